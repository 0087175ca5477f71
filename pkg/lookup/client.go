package lookup

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
	fiberClient "github.com/gofiber/fiber/v3/client"
)

// DefaultRegistryURL is the central AdCP registry.
const DefaultRegistryURL = "https://agenticadvertising.org"

// Brand is a resolved brand identity. Brand houses, sub-brands and operators
// (agencies, DSPs) are all brands in the registry.
type Brand struct {
	Domain   string `json:"domain"`
	Name     string `json:"name"`
	MemberID string `json:"member_id,omitempty"`
}

// Property is a resolved media property.
type Property struct {
	Domain       string `json:"domain"`
	Name         string `json:"name"`
	PropertyType string `json:"property_type,omitempty"`
}

// Member is a registry member organization.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

/*
Client provides brand, property and member lookups against the central AdCP
registry. Bulk resolution is not part of this client; callers loop over
single lookups.
*/
type Client struct {
	baseURL string
	conn    *fiberClient.Client
}

// NewClient creates a registry lookup client for the given base URL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultRegistryURL
	}

	return &Client{
		baseURL: baseURL,
		conn:    fiberClient.New().SetBaseURL(baseURL),
	}
}

// LookupBrand resolves a domain (e.g. "nike.com") to its brand identity.
func (client *Client) LookupBrand(domain string) (*Brand, error) {
	log.Debug("resolving brand", "domain", domain)

	var brand Brand
	if err := client.resolve("/api/brands/resolve", domain, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

// LookupProperty resolves a domain to its media property record.
func (client *Client) LookupProperty(domain string) (*Property, error) {
	log.Debug("resolving property", "domain", domain)

	var property Property
	if err := client.resolve("/api/properties/resolve", domain, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// GetMember retrieves a registry member by its identifier.
func (client *Client) GetMember(id string) (*Member, error) {
	log.Debug("fetching member", "id", id)

	res, err := client.conn.Get(fmt.Sprintf("/api/members/%s", id))
	if err != nil {
		return nil, &ConnectionError{Message: client.baseURL, Err: err}
	}

	if res.StatusCode() == fiber.StatusNotFound {
		return nil, &NotFoundError{Key: id}
	}
	if res.StatusCode() != fiber.StatusOK {
		return nil, &StatusError{StatusCode: res.StatusCode(), Body: string(res.Body())}
	}

	var member Member
	if err := res.JSON(&member); err != nil {
		return nil, &DecodingError{Message: "member", Err: err}
	}
	return &member, nil
}

func (client *Client) resolve(path, domain string, out any) error {
	res, err := client.conn.Get(path, fiberClient.Config{
		Param: map[string]string{"domain": domain},
	})
	if err != nil {
		return &ConnectionError{Message: client.baseURL, Err: err}
	}

	if res.StatusCode() == fiber.StatusNotFound {
		return &NotFoundError{Key: domain}
	}
	if res.StatusCode() != fiber.StatusOK {
		return &StatusError{StatusCode: res.StatusCode(), Body: string(res.Body())}
	}

	if err := res.JSON(out); err != nil {
		return &DecodingError{Message: domain, Err: err}
	}
	return nil
}
