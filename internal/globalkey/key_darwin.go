package globalkey

import "golang.design/x/hotkey"

// kVK_ANSI_Backslash
const backslash = hotkey.Key(0x2a)
