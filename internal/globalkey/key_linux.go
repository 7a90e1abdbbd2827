package globalkey

import "golang.design/x/hotkey"

// XK_backslash
const backslash = hotkey.Key(0x5c)
