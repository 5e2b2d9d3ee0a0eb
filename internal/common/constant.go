// Package common contains shared constants, sentinel errors and the error
// code vocabulary used across the admin settings client and server.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ProfilesCollection names the document collection holding user profiles.
// It is used as table name, Redis key prefix and S3 key prefix.
const ProfilesCollection = "users"
