package main

import (
	"localdrop/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.BusinessModel{},
		model.UserModel{},
		model.PartnershipRequestModel{},
		model.AccountDeviceModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
