package globalkey

import "golang.design/x/hotkey"

// VK_OEM_5, the backslash key on US layouts
const backslash = hotkey.Key(0xdc)
