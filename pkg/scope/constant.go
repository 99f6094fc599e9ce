package scope

import "time"

// TokenExpirationDuration is the lifetime of an issued token.
const TokenExpirationDuration = 24 * time.Hour
