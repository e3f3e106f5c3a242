package constant

// AsciiArtLogo is the application's ASCII art banner shown on the root help screen.
const AsciiArtLogo = `
       _
 _ __ (_) ___ ___  __ _ _ __
| '_ \| |/ __/ __|/ _` + "`" + ` | '_ \
| |_) | | (__\__ \ (_| | | | |
| .__/|_|\___|___/\__,_|_| |_|
|_|
`
