package consts

// Stellar ed25519 public keys: 'G' followed by 55 base32 characters.
const ValidStellarAddress = `^G[A-Z2-7]{55}$`

var SensitiveKeys = []string{"Authorization", "X-Api-Key", "Cookie"}
