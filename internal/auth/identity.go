package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	apperrors "cs-crm-backend/internal/errors"
	"cs-crm-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	// ServiceTokenHeader carries the shared secret that unlocks fallback identities
	ServiceTokenHeader = "X-Service-Token"
	// UserIDParam is the query parameter and body field used for fallback identities
	UserIDParam = "user_id"
)

// IdentitySource records which path produced an identity
type IdentitySource string

const (
	SourceSession IdentitySource = "session"
	SourceQuery   IdentitySource = "query"
	SourceBody    IdentitySource = "body"
)

// Identity is the resolved caller of a request
type Identity struct {
	ID     string         `json:"id"`
	Email  string         `json:"email,omitempty"`
	Source IdentitySource `json:"source"`
}

// IsFallback reports whether the identity was asserted by the caller rather than a session
func (i *Identity) IsFallback() bool {
	return i.Source != SourceSession
}

// ResolveMode selects which identity paths a route accepts
type ResolveMode int

const (
	// SessionOnly accepts the session cookie or bearer token only
	SessionOnly ResolveMode = iota
	// QueryFallback also accepts ?user_id= on any method
	QueryFallback
	// FullFallback also accepts a user_id field in the body of state-changing requests
	FullFallback
)

// BodyIdentity is implemented by parsed request bodies that may carry a user_id
type BodyIdentity interface {
	BodyUserID() string
}

// FallbackBody can be embedded in request payloads of routes that accept a body identity
type FallbackBody struct {
	UserID string `json:"user_id,omitempty"`
}

// BodyUserID returns the user_id field of the body
func (b *FallbackBody) BodyUserID() string {
	if b == nil {
		return ""
	}
	return b.UserID
}

// FallbackPolicy governs caller-asserted identities. With a ServiceToken set,
// query and body identities are honoured only alongside a matching X-Service-Token.
type FallbackPolicy struct {
	Enabled      bool
	ServiceToken string
}

// SessionVerifier resolves the session identity of a request
type SessionVerifier interface {
	FromRequest(r *http.Request) (*Identity, error)
}

// FallbackRecorder counts fallback identities by source
type FallbackRecorder interface {
	RecordFallback(source string)
}

// IdentityResolver turns a request into an Identity
type IdentityResolver struct {
	sessions SessionVerifier
	policy   FallbackPolicy
	recorder FallbackRecorder
}

// NewIdentityResolver creates a new identity resolver. recorder may be nil.
func NewIdentityResolver(sessions SessionVerifier, policy FallbackPolicy, recorder FallbackRecorder) *IdentityResolver {
	return &IdentityResolver{sessions: sessions, policy: policy, recorder: recorder}
}

// Resolve returns the caller identity, trying the session first. A valid session
// always wins over any user_id supplied in the query or body.
func (r *IdentityResolver) Resolve(c *gin.Context, mode ResolveMode, body BodyIdentity) (*Identity, error) {
	identity, err := r.sessions.FromRequest(c.Request)
	if err == nil {
		return identity, nil
	}

	if mode == SessionOnly || !r.policy.Enabled || !r.serviceTokenOK(c) {
		return nil, apperrors.ErrUnauthenticated
	}

	if userID := strings.TrimSpace(c.Query(UserIDParam)); userID != "" {
		return r.fallback(c, userID, SourceQuery), nil
	}

	if mode == FullFallback && isStateChanging(c.Request.Method) && body != nil {
		if userID := strings.TrimSpace(body.BodyUserID()); userID != "" {
			return r.fallback(c, userID, SourceBody), nil
		}
	}

	return nil, apperrors.ErrUnauthenticated
}

func (r *IdentityResolver) serviceTokenOK(c *gin.Context) bool {
	if r.policy.ServiceToken == "" {
		return true
	}
	presented := c.GetHeader(ServiceTokenHeader)
	return subtle.ConstantTimeCompare([]byte(presented), []byte(r.policy.ServiceToken)) == 1
}

func (r *IdentityResolver) fallback(c *gin.Context, userID string, source IdentitySource) *Identity {
	logger.FromGin(c).WithFields(map[string]interface{}{
		"fallback_user": userID,
		"source":        string(source),
	}).Warn("Request authenticated with caller-supplied user id")
	if r.recorder != nil {
		r.recorder.RecordFallback(string(source))
	}
	return &Identity{ID: userID, Source: source}
}

func isStateChanging(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
