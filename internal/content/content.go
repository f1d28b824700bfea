// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Package content holds the static site records: case studies, blog
// articles, service lines and KPI counters.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lexfrei/studio-site/internal/i18n"
)

//go:embed data/*.yaml
var embeddedFS embed.FS

const (
	casesFile    = "data/cases.yaml"
	articlesFile = "data/articles.yaml"
	servicesFile = "data/services.yaml"
)

// Localized is free text per language. Russian is mandatory and used when a
// language has no text of its own.
type Localized map[i18n.Lang]string

// In returns the text for lang.
func (l Localized) In(lang i18n.Lang) string {
	if text, ok := l[lang]; ok && text != "" {
		return text
	}

	return l[i18n.DefaultLang]
}

// Achievement is a headline metric of a case.
type Achievement struct {
	Metric      string    `yaml:"metric"`
	Description Localized `yaml:"description"`
}

// Case is a portfolio case study.
type Case struct {
	ID           int           `yaml:"id"`
	Image        string        `yaml:"image"`
	Title        string        `yaml:"title"`
	Client       string        `yaml:"client"`
	Category     string        `yaml:"category"`
	Result       string        `yaml:"result"`
	Months       int           `yaml:"months"`
	Team         int           `yaml:"team"`
	Summary      Localized     `yaml:"summary"`
	Challenge    Localized     `yaml:"challenge"`
	Solution     Localized     `yaml:"solution"`
	Objectives   []Localized   `yaml:"objectives"`
	Achievements []Achievement `yaml:"achievements"`
	Technologies []string      `yaml:"technologies"`
}

// Article is a blog post teaser.
type Article struct {
	Slug        string    `yaml:"slug"`
	Image       string    `yaml:"image"`
	Category    string    `yaml:"category"`
	Date        time.Time `yaml:"date"`
	ReadMinutes int       `yaml:"read_minutes"`
	Title       Localized `yaml:"title"`
	Excerpt     Localized `yaml:"excerpt"`
}

// Service is a service line.
type Service struct {
	Key         string     `yaml:"key"`
	Icon        string     `yaml:"icon"`
	Title       i18n.Key   `yaml:"title"`
	Description i18n.Key   `yaml:"description"`
	Full        i18n.Key   `yaml:"full"`
	Metric      string     `yaml:"metric"`
	MetricLabel string     `yaml:"metric_label"`
	Items       []i18n.Key `yaml:"items"`
}

// KPI is an animated counter on the home page.
type KPI struct {
	Label  i18n.Key `yaml:"label"`
	Value  int      `yaml:"value"`
	Suffix string   `yaml:"suffix"`
}

// Catalog is the loaded, validated content.
type Catalog struct {
	cases    []Case
	articles []Article
	services []Service
	kpis     []KPI
}

type casesFileData struct {
	Cases []Case `yaml:"cases"`
}

type articlesFileData struct {
	Articles []Article `yaml:"articles"`
}

type servicesFileData struct {
	Services []Service `yaml:"services"`
	KPIs     []KPI     `yaml:"kpis"`
}

// LoadEmbedded loads the content shipped with the binary.
func LoadEmbedded() (*Catalog, error) {
	return Load(embeddedFS)
}

// Load reads and validates the content files from fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	var (
		cases    casesFileData
		articles articlesFileData
		services servicesFileData
	)

	if err := decodeFile(fsys, casesFile, &cases); err != nil {
		return nil, err
	}

	if err := decodeFile(fsys, articlesFile, &articles); err != nil {
		return nil, err
	}

	if err := decodeFile(fsys, servicesFile, &services); err != nil {
		return nil, err
	}

	catalog := &Catalog{
		cases:    cases.Cases,
		articles: articles.Articles,
		services: services.Services,
		kpis:     services.KPIs,
	}

	if err := catalog.validate(); err != nil {
		return nil, err
	}

	return catalog, nil
}

func decodeFile(fsys fs.FS, path string, out any) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

func (c *Catalog) validate() error {
	var errs []error

	if len(c.cases) == 0 {
		errs = append(errs, errors.New("no cases defined"))
	}

	for i, cs := range c.cases {
		if cs.ID != i {
			errs = append(errs, fmt.Errorf("case %d: id %d out of sequence", i, cs.ID))
		}

		if strings.TrimSpace(cs.Title) == "" {
			errs = append(errs, fmt.Errorf("case %d: title is required", i))
		}

		texts := append([]Localized{cs.Summary, cs.Challenge, cs.Solution}, cs.Objectives...)
		for _, achievement := range cs.Achievements {
			texts = append(texts, achievement.Description)
		}

		for _, text := range texts {
			if text[i18n.DefaultLang] == "" {
				errs = append(errs, fmt.Errorf("case %d: text without %s translation", i, i18n.DefaultLang))

				break
			}
		}
	}

	for i, article := range c.articles {
		if article.Slug == "" || article.Title[i18n.DefaultLang] == "" || article.Excerpt[i18n.DefaultLang] == "" {
			errs = append(errs, fmt.Errorf("article %d: slug, title and excerpt are required", i))
		}
	}

	known := i18n.AllKeys()

	checkKey := func(owner string, key i18n.Key) {
		if !slices.Contains(known, key) {
			errs = append(errs, fmt.Errorf("%s: unknown translation key %q", owner, key))
		}
	}

	for _, service := range c.services {
		owner := "service " + service.Key
		checkKey(owner, service.Title)
		checkKey(owner, service.Description)
		checkKey(owner, service.Full)

		for _, item := range service.Items {
			checkKey(owner, item)
		}
	}

	for _, kpi := range c.kpis {
		checkKey("kpi", kpi.Label)
	}

	return errors.Join(errs...)
}

// Cases returns all cases in id order.
func (c *Catalog) Cases() []Case {
	return slices.Clone(c.cases)
}

// Case returns the case with id. Unknown ids fall back to case 0.
func (c *Catalog) Case(id int) Case {
	if id < 0 || id >= len(c.cases) {
		return c.cases[0]
	}

	return c.cases[id]
}

// NextCase returns the case after id, wrapping to the first.
func (c *Catalog) NextCase(id int) Case {
	current := c.Case(id)

	return c.cases[(current.ID+1)%len(c.cases)]
}

// FeaturedCases returns the first n cases for the home carousel.
func (c *Catalog) FeaturedCases(n int) []Case {
	if n <= 0 || n > len(c.cases) {
		n = len(c.cases)
	}

	return slices.Clone(c.cases[:n])
}

// Articles returns the blog articles, newest first.
func (c *Catalog) Articles() []Article {
	articles := slices.Clone(c.articles)
	slices.SortStableFunc(articles, func(a, b Article) int {
		return b.Date.Compare(a.Date)
	})

	return articles
}

// Services returns the service lines.
func (c *Catalog) Services() []Service {
	return slices.Clone(c.services)
}

// KPIs returns the home page counters.
func (c *Catalog) KPIs() []KPI {
	return slices.Clone(c.kpis)
}
