package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the caller's
// signed identity token on requests.
const AccessTokenHeaderName = "access_token"
