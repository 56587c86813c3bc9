package main

import (
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"
	"github.com/poiesic/scrapreform/core"
)

// musgen writes core/records_mus.gen.go, the MUS serializers of the records
// kept in the site catalog and the report archive.
func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// Run from core via go:generate or from the module root.
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/poiesic/scrapreform/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.ID]())

	// Unix micro timestamps
	micro := typeops.WithTimeUnit(typeops.Micro)

	// Id, Category, SiteName, URL, InsertedAt, UpdatedAt
	err = g.AddStruct(reflect.TypeFor[core.SiteEntry](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(micro),
		structops.WithField(micro))
	if err != nil {
		panic(err)
	}

	// RelevantMatch must be registered before Report, which holds a slice of it.
	err = g.AddStruct(reflect.TypeFor[core.RelevantMatch]())
	if err != nil {
		panic(err)
	}

	// Id, RequestID, Query, Keywords, Matches, Content, Answer, CreatedAt
	err = g.AddStruct(reflect.TypeFor[core.Report](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(micro))
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/records_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}
