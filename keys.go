package trailmap

type Key string

const (
	// IpAddrKey stashes the IP address of an HTTP request being handled by a mounted route.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// MountPrefixKey stashes the prefix the route group handling an HTTP request was mounted at.
	MountPrefixKey Key = "MountPrefixKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "trailmap context key: " + string(k)
}
