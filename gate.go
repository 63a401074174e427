package agencykit

import "crypto/subtle"

// DemoPasswords is the accepted token set for the admin gate, compared
// case-sensitively. This is an explicit demo-only gate carried over from the
// system this replaces: it grants no real authorization, is trivially
// bypassable, and must not be treated as a security boundary. Deployments
// that need real auth should put this behind their own access control.
var DemoPasswords = []string{"admin", "presh"}

// Gate is the admin gate over the KV store. A successful check persists the
// literal "true" under the auth-flag key; sign-out removes it. Nothing else
// reads or writes that key.
type Gate struct {
	kv KV
}

// NewGate creates a Gate on top of the given KV.
func NewGate(kv KV) *Gate {
	return &Gate{kv: kv}
}

// Authenticate compares password against the demo token set. On match the
// auth flag is persisted and true is returned; on mismatch stored state is
// left untouched.
func (g *Gate) Authenticate(password string) (bool, error) {
	matched := false
	for _, p := range DemoPasswords {
		if subtle.ConstantTimeCompare([]byte(password), []byte(p)) == 1 {
			matched = true
		}
	}
	if !matched {
		return false, nil
	}
	if err := g.kv.Set(authFlagKey, "true"); err != nil {
		return false, err
	}
	return true, nil
}

// Authed reports whether the auth flag is currently set.
func (g *Gate) Authed() (bool, error) {
	v, ok, err := g.kv.Get(authFlagKey)
	if err != nil {
		return false, err
	}
	return ok && v == "true", nil
}

// SignOut removes the auth flag.
func (g *Gate) SignOut() error {
	return g.kv.Delete(authFlagKey)
}
