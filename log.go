package trailmap

// LogMaskVal replaces sensitive values in log messages.
const LogMaskVal = "xxxxxxx"

// MaskedQueryKeys are the query parameters whose values are masked when a request is logged.
var MaskedQueryKeys = []string{"password", "token", "api_key"}
