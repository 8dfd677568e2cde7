package bitbucket

import "encoding/base64"

// Credentials authenticates against the API with a username and an app password
type Credentials struct {
	Username    string
	AppPassword string
}

// Header returns the Authorization header value: Basic base64(username:password)
func (c Credentials) Header() string {
	raw := c.Username + ":" + c.AppPassword
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw))
}

// String hides the password so credentials never end up in logs
func (c Credentials) String() string {
	return c.Username + ":****"
}
