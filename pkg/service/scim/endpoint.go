package scim

import (
	"net/url"
	"strings"

	"github.com/secmon-lab/culler/pkg/domain/types"
)

// Hosted Basic and Business sites all live under the multi-tenant SaaS
// domain; Enterprise sites run on customer domains with a different SCIM
// path prefix.
const (
	saasHostMarker      = "stackoverflowteams.com"
	basicUsersPath      = "/auth/scim/v2/users"
	enterpriseUsersPath = "/api/scim/v2/users"
)

// ResolveEndpoint derives the SCIM users endpoint and tier from the base
// site URL. The mapping is static: no capability discovery is attempted.
func ResolveEndpoint(siteURL string) (string, types.Tier) {
	host := siteURL
	if u, err := url.Parse(siteURL); err == nil && u.Host != "" {
		host = u.Host
	}

	base := strings.TrimRight(siteURL, "/")
	if strings.Contains(host, saasHostMarker) {
		return base + basicUsersPath, types.TierBasicOrBusiness
	}
	return base + enterpriseUsersPath, types.TierEnterpriseSelfHosted
}
