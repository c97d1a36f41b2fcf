package i18n

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/messages.yaml
var messagesYAML []byte

// Default language of the UI
const Default = "ar"

// Messages static UI text of one language
type Messages struct {
	Direction      string   `yaml:"direction"`
	Title          string   `yaml:"title"`
	Subtitle       string   `yaml:"subtitle"`
	Loading        string   `yaml:"loading"`
	DataError      string   `yaml:"data_error"`
	StepLabels     []string `yaml:"step_labels"`
	Step1Heading   string   `yaml:"step1_heading"`
	Step2Heading   string   `yaml:"step2_heading"`
	Step3Heading   string   `yaml:"step3_heading"`
	Step4Heading   string   `yaml:"step4_heading"`
	BackToCities   string   `yaml:"back_to_cities"`
	BackToRegions  string   `yaml:"back_to_regions"`
	BackToBranches string   `yaml:"back_to_branches"`
	StartOver      string   `yaml:"start_over"`
	Address        string   `yaml:"address"`
	Phone          string   `yaml:"phone"`
	OpenInMaps     string   `yaml:"open_in_maps"`
	CallNow        string   `yaml:"call_now"`
	MapEmbed       string   `yaml:"map_embed"`
	Nearby         string   `yaml:"nearby"`
	DistanceKm     string   `yaml:"distance_km"`
	NoOptions      string   `yaml:"no_options"`
	Filter         string   `yaml:"filter"`
	Help           string   `yaml:"help"`
}

// RTL reports whether the language reads right to left
func (m *Messages) RTL() bool { return m.Direction == "rtl" }

// StepLabel label of a 1-based step, empty when out of range
func (m *Messages) StepLabel(step int) string {
	if step < 1 || step > len(m.StepLabels) {
		return ""
	}
	return m.StepLabels[step-1]
}

// Catalog all embedded languages
type Catalog map[string]*Messages

// LoadCatalog decodes the embedded message file
func LoadCatalog() (Catalog, error) {
	catalog := Catalog{}
	if err := yaml.Unmarshal(messagesYAML, &catalog); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return catalog, nil
}

// Lookup returns the messages of lang, or of Default when lang is unknown
func (c Catalog) Lookup(lang string) *Messages {
	if m, ok := c[lang]; ok {
		return m
	}
	return c[Default]
}

// MustLoad is LoadCatalog(...).Lookup(lang) for callers with no way to recover
func MustLoad(lang string) *Messages {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c.Lookup(lang)
}
