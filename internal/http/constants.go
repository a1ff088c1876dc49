package httpx

// Cookie names shared between handlers and middleware.
const (
	// SessionCookie carries the opaque session identifier.
	SessionCookie = "session_id"

	// RedirectStashCookie holds the path a guard bounced an anonymous
	// browser away from. It is consumed exactly once at sign-in.
	RedirectStashCookie = "redirect_to"

	// OAuthStateCookie and OAuthNonceCookie hold the federated-login
	// state and nonce between the begin and callback legs of the flow.
	OAuthStateCookie = "oauth_state"
	OAuthNonceCookie = "oauth_nonce"
)

// redirectStashMaxAge bounds how long a stashed path stays valid.
// Ten minutes covers a normal sign-in without leaving stale state around.
const redirectStashMaxAge = 600

// oauthCookieMaxAge bounds how long the state and nonce cookies live.
// It matches the stash window so a stalled provider round-trip fails whole.
const oauthCookieMaxAge = 600

// Pagination bounds for list endpoints.
const (
	// DefaultPageLimit is used when the client does not specify a limit.
	DefaultPageLimit = 20

	// MaxPageLimit caps client-specified limits.
	MaxPageLimit = 100
)

// accessDeniedPath is where browser requests land after a role denial.
const accessDeniedPath = "/?erro=acesso_negado"
