// Package catalog - Catalog file loading
// Catalog files may be HCL, YAML or JSON. Every format funnels into New,
// so a loaded catalog is validated exactly like the built-in one.
package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"roas-calculator/core/types"
	"roas-calculator/internal/errors"
)

// hclCatalog is the HCL file shape:
//
//	tier "bronze" {
//	  name        = "Bronze"
//	  monthly_fee = 450
//	  spend_cap   = 1000
//	}
type hclCatalog struct {
	Tiers []hclTier `hcl:"tier,block"`
}

type hclTier struct {
	Key           string   `hcl:"key,label"`
	Name          string   `hcl:"name"`
	Tagline       string   `hcl:"tagline,optional"`
	MonthlyFee    float64  `hcl:"monthly_fee"`
	OnboardingFee float64  `hcl:"onboarding_fee,optional"`
	SpendCap      float64  `hcl:"spend_cap"`
	Features      []string `hcl:"features,optional"`
}

// fileCatalog is the YAML and JSON file shape
type fileCatalog struct {
	Tiers []types.Tier `json:"tiers" yaml:"tiers"`
}

// Load reads a catalog file, choosing the decoder by extension
func Load(path string) (*Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("failed to read catalog file", err).WithContext("path", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return ParseHCL(src, path)
	case ".yaml", ".yml":
		return ParseYAML(src)
	case ".json":
		return ParseJSON(src)
	default:
		return nil, errors.NotSupported("catalog format " + filepath.Ext(path)).WithContext("path", path)
	}
}

// ParseHCL decodes tier blocks from HCL source
func ParseHCL(src []byte, filename string) (*Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid catalog HCL", diagError(diags))
	}

	var doc hclCatalog
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, errors.Parsing("invalid catalog HCL", diagError(diags))
	}

	tiers := make([]types.Tier, 0, len(doc.Tiers))
	for _, t := range doc.Tiers {
		tiers = append(tiers, types.Tier{
			Key:           t.Key,
			Name:          t.Name,
			Tagline:       t.Tagline,
			MonthlyFee:    t.MonthlyFee,
			OnboardingFee: t.OnboardingFee,
			SpendCap:      t.SpendCap,
			Features:      t.Features,
		})
	}
	return New(tiers...)
}

// ParseYAML decodes a `tiers:` list from YAML source
func ParseYAML(src []byte) (*Catalog, error) {
	var doc fileCatalog
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, errors.Parsing("invalid catalog YAML", err)
	}
	return New(doc.Tiers...)
}

// ParseJSON decodes a `tiers` array from JSON source
func ParseJSON(src []byte) (*Catalog, error) {
	var doc fileCatalog
	if err := json.Unmarshal(src, &doc); err != nil {
		return nil, errors.Parsing("invalid catalog JSON", err)
	}
	return New(doc.Tiers...)
}

// diagError keeps only error-severity diagnostics
func diagError(diags hcl.Diagnostics) error {
	var errs hcl.Diagnostics
	for _, d := range diags {
		if d.Severity == hcl.DiagError {
			errs = append(errs, d)
		}
	}
	return errs
}
