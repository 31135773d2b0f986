package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// Regenerates the generated_maps model from a migrated database so drift
// against internal/adapter/repo/gorm/model can be diffed by hand.
func main() {
	var dsn, out, table string
	flag.StringVar(&dsn, "dsn", os.Getenv("HEXFORGE_DB_DSN"), "postgres dsn")
	flag.StringVar(&out, "out", "tmp/modelgen", "output dir for generated models")
	flag.StringVar(&table, "table", "generated_maps", "table to generate")
	flag.Parse()

	if dsn == "" {
		log.Fatal("missing --dsn or HEXFORGE_DB_DSN")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:      out,
		ModelPkgPath: "model",
		Mode:         gen.WithoutContext,
	})
	g.UseDB(db)
	g.ApplyBasic(g.GenerateModelAs(table, "GeneratedMap"))
	g.Execute()

	fmt.Printf("generated %s model at %s\n", table, out)
}
