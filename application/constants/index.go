package constants

var SUPPORT_EMAIL = "help@stockroom.io"

// token lifetimes used when minting a token set. the three tokens are always
// minted and returned together
var ACCESS_TOKEN_TTL = 60 * 60                // 1 hour
var ID_TOKEN_TTL = 60 * 60                    // 1 hour
var REFRESH_TOKEN_TTL = 60 * 60 * 24 * 180    // 180 days

var MAX_VENDORS_PER_PAGE int64 = 50
var MAX_PRODUCTS_PER_PAGE int64 = 100

var DEFAULT_REORDER_LEVEL uint = 10
