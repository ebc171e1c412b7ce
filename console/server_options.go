package console

// Option defines a function signature for setting Server options.
type Option func(*Server)

// WithCookieKeys sets the securecookie hash and block keys. (default: random per process)
func WithCookieKeys(hashKey, blockKey []byte) Option {
	return Option(func(s *Server) {
		s.hashKey = hashKey
		s.blockKey = blockKey
	})
}

// WithSecureCookies marks the console cookies Secure. Enable when the console is served over TLS. (default: false)
func WithSecureCookies(secure bool) Option {
	return Option(func(s *Server) {
		s.secureCookie = secure
	})
}

// WithRequestLogging installs the request logger middleware. (default: true)
func WithRequestLogging(enabled bool) Option {
	return Option(func(s *Server) {
		s.logRequests = enabled
	})
}
