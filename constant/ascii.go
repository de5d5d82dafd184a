package constant

// AsciiArtLogo is the application's ASCII art banner.
const AsciiArtLogo = `
 _                      _      _
| |__  _   _  ___ _ __ (_) ___| | __
| '_ \| | | |/ _ \ '_ \| |/ __| |/ /
| | | | |_| |  __/ |_) | | (__|   <
|_| |_|\__,_|\___| .__/|_|\___|_|\_\
                 |_|`
