package lookup

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type mockRegistry struct {
	*httptest.Server
	customBrand  http.HandlerFunc
	customMember http.HandlerFunc
}

func newMockRegistry() *mockRegistry {
	mock := &mockRegistry{}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/brands/resolve", func(w http.ResponseWriter, r *http.Request) {
		if mock.customBrand != nil {
			mock.customBrand(w, r)
			return
		}
		if r.URL.Query().Get("domain") == "unknown.example" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(Brand{Domain: r.URL.Query().Get("domain"), Name: "Acme", MemberID: "m1"})
	})
	mux.HandleFunc("/api/properties/resolve", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Property{Domain: r.URL.Query().Get("domain"), Name: "Acme News", PropertyType: "website"})
	})
	mux.HandleFunc("/api/members/", func(w http.ResponseWriter, r *http.Request) {
		if mock.customMember != nil {
			mock.customMember(w, r)
			return
		}
		json.NewEncoder(w).Encode(Member{ID: "m1", Name: "Acme Holdings"})
	})

	mock.Server = httptest.NewServer(mux)
	return mock
}

func TestLookupBrand(t *testing.T) {
	Convey("Given a registry lookup client", t, func() {
		server := newMockRegistry()
		defer server.Close()
		client := NewClient(server.URL)

		Convey("When resolving a known domain", func() {
			brand, err := client.LookupBrand("acme.com")

			Convey("Then the brand is returned", func() {
				So(err, ShouldBeNil)
				So(brand.Domain, ShouldEqual, "acme.com")
				So(brand.Name, ShouldEqual, "Acme")
			})
		})

		Convey("When resolving an unknown domain", func() {
			brand, err := client.LookupBrand("unknown.example")

			Convey("Then a NotFoundError is returned", func() {
				So(brand, ShouldBeNil)
				So(err, ShouldHaveSameTypeAs, &NotFoundError{})
			})
		})

		Convey("When the registry returns a server error", func() {
			server.customBrand = func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}

			brand, err := client.LookupBrand("acme.com")

			Convey("Then a StatusError is returned", func() {
				So(brand, ShouldBeNil)
				So(err, ShouldHaveSameTypeAs, &StatusError{})
			})
		})
	})
}

func TestLookupProperty(t *testing.T) {
	Convey("Given a registry lookup client", t, func() {
		server := newMockRegistry()
		defer server.Close()
		client := NewClient(server.URL)

		Convey("When resolving a property domain", func() {
			property, err := client.LookupProperty("acmenews.com")

			Convey("Then the property is returned", func() {
				So(err, ShouldBeNil)
				So(property.PropertyType, ShouldEqual, "website")
			})
		})
	})
}

func TestGetMember(t *testing.T) {
	Convey("Given a registry lookup client", t, func() {
		server := newMockRegistry()
		defer server.Close()
		client := NewClient(server.URL)

		Convey("When fetching a member", func() {
			member, err := client.GetMember("m1")

			Convey("Then the member is returned", func() {
				So(err, ShouldBeNil)
				So(member.Name, ShouldEqual, "Acme Holdings")
			})
		})

		Convey("When the member does not exist", func() {
			server.customMember = func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}

			member, err := client.GetMember("missing")

			Convey("Then a NotFoundError is returned", func() {
				So(member, ShouldBeNil)
				So(err, ShouldHaveSameTypeAs, &NotFoundError{})
			})
		})
	})
}

func TestNewClientDefaultURL(t *testing.T) {
	Convey("Given no base URL", t, func() {
		client := NewClient("")

		Convey("The central registry is used", func() {
			So(client.baseURL, ShouldEqual, DefaultRegistryURL)
		})
	})
}
