/*
Package catalog holds the configuration vocabulary behind a quote session:
the loan-program list (the controlled labels the category classifiers test
against) and the third-party service grid (categories of fee services shown
per rate column).

PURPOSE:
  Both lists are runtime-editable configuration, not fixed schema: office
  admins add, rename and remove services as their vendor list changes.
  Identity is always the stable string ID; array position is display order
  only and never identity.

SEE ALSO:
  - loader.go: YAML/JSON file loading and validation
  - quote/category.go: classifiers over program labels
  - quote/closing.go: aggregation over well-known service IDs
*/
package catalog

import "fmt"

// =============================================================================
// TYPES
// =============================================================================

// Program is one loan product the brokerage quotes. Its label is the
// loan-category vocabulary the engine's classifiers test against.
type Program struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Service is one third-party fee line item.
type Service struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Category groups services for display.
type Category struct {
	ID       string    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Services []Service `json:"services" yaml:"services"`
}

// Catalog is the full configuration document.
type Catalog struct {
	Programs   []Program  `json:"programs" yaml:"programs"`
	Categories []Category `json:"categories" yaml:"categories"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the stock configuration a fresh install ships with.
func Default() *Catalog {
	return &Catalog{
		Programs: []Program{
			{ID: "conv-purchase", Label: "Conventional - Purchase"},
			{ID: "conv-rt", Label: "Conventional - Rate & Term Refinance"},
			{ID: "conv-co", Label: "Conventional - Cash Out Refinance"},
			{ID: "fha-purchase", Label: "FHA - Purchase"},
			{ID: "fha-rt", Label: "FHA - Rate & Term Refinance"},
			{ID: "fha-co", Label: "FHA - Cash Out Refinance"},
			{ID: "fha-sl", Label: "FHA - Streamline Refinance"},
			{ID: "va-purchase", Label: "VA - Purchase"},
			{ID: "va-rt", Label: "VA - Rate & Term Refinance"},
			{ID: "va-co", Label: "VA - Cash Out Refinance"},
			{ID: "va-irrrl", Label: "VA - IRRRL"},
			{ID: "va-jumbo-co", Label: "VA Jumbo - Cash Out Refinance"},
			{ID: "heloc", Label: "Second Loan - HELOC"},
			{ID: "fixed-second", Label: "Second Loan - Fixed Second"},
		},
		Categories: []Category{
			{ID: "c1", Name: "Government Fees", Services: []Service{
				{ID: "s1", Name: "VA Funding Fee"},
			}},
			{ID: "c2", Name: "Property Services", Services: []Service{
				{ID: "s2", Name: "Appraisal Inspection"},
				{ID: "s3", Name: "Flood Certification"},
			}},
			{ID: "c3", Name: "Lender Fees", Services: []Service{
				{ID: "s4", Name: "Underwriting"},
				{ID: "s8", Name: "Processing"},
				{ID: "s9", Name: "Credit Report"},
			}},
			{ID: "c4", Name: "Title & Recording", Services: []Service{
				{ID: "s5", Name: "Title / Escrow"},
				{ID: "s7", Name: "State Tax / Recording"},
			}},
			{ID: "c5", Name: "Payoff", Services: []Service{
				{ID: "s6", Name: "Pay-Off Interest"},
			}},
		},
	}
}

// Clone returns a deep copy, so edits on a snapshot never leak into a
// catalog another goroutine is reading.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		Programs:   append([]Program(nil), c.Programs...),
		Categories: make([]Category, len(c.Categories)),
	}
	for i, cat := range c.Categories {
		cat.Services = append([]Service(nil), cat.Services...)
		out.Categories[i] = cat
	}
	return out
}

// =============================================================================
// LOOKUPS
// =============================================================================

// ServiceIDs returns every configured service ID in display order.
func (c *Catalog) ServiceIDs() []string {
	var out []string
	for _, cat := range c.Categories {
		for _, svc := range cat.Services {
			out = append(out, svc.ID)
		}
	}
	return out
}

// ProgramLabels returns the loan-category vocabulary in display order.
func (c *Catalog) ProgramLabels() []string {
	out := make([]string, len(c.Programs))
	for i, p := range c.Programs {
		out[i] = p.Label
	}
	return out
}

// HasProgramLabel reports whether a label is part of the vocabulary.
func (c *Catalog) HasProgramLabel(label string) bool {
	for _, p := range c.Programs {
		if p.Label == label {
			return true
		}
	}
	return false
}

func (c *Catalog) findCategory(id string) *Category {
	for i := range c.Categories {
		if c.Categories[i].ID == id {
			return &c.Categories[i]
		}
	}
	return nil
}

// =============================================================================
// MUTATIONS
// =============================================================================

// AddService appends a service to a category. IDs must be new.
func (c *Catalog) AddService(categoryID string, svc Service) error {
	if svc.ID == "" || svc.Name == "" {
		return fmt.Errorf("service id and name are required")
	}
	for _, id := range c.ServiceIDs() {
		if id == svc.ID {
			return fmt.Errorf("duplicate service id %q", svc.ID)
		}
	}
	cat := c.findCategory(categoryID)
	if cat == nil {
		return fmt.Errorf("unknown category %q", categoryID)
	}
	cat.Services = append(cat.Services, svc)
	return nil
}

// RenameService changes a service's display name, keeping its ID stable.
func (c *Catalog) RenameService(serviceID, name string) error {
	for ci := range c.Categories {
		for si := range c.Categories[ci].Services {
			if c.Categories[ci].Services[si].ID == serviceID {
				c.Categories[ci].Services[si].Name = name
				return nil
			}
		}
	}
	return fmt.Errorf("unknown service %q", serviceID)
}

// RemoveService drops a service from whichever category holds it.
func (c *Catalog) RemoveService(serviceID string) error {
	for ci := range c.Categories {
		svcs := c.Categories[ci].Services
		for si := range svcs {
			if svcs[si].ID == serviceID {
				c.Categories[ci].Services = append(svcs[:si:si], svcs[si+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("unknown service %q", serviceID)
}

// AddCategory appends an empty category.
func (c *Catalog) AddCategory(cat Category) error {
	if cat.ID == "" || cat.Name == "" {
		return fmt.Errorf("category id and name are required")
	}
	if c.findCategory(cat.ID) != nil {
		return fmt.Errorf("duplicate category id %q", cat.ID)
	}
	c.Categories = append(c.Categories, cat)
	return nil
}

// RemoveCategory drops a category and all its services.
func (c *Catalog) RemoveCategory(categoryID string) error {
	for i := range c.Categories {
		if c.Categories[i].ID == categoryID {
			c.Categories = append(c.Categories[:i:i], c.Categories[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", categoryID)
}
