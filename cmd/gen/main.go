package main

import (
	"perkhub/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.ProfileModel{},
		model.ProfileMembershipModel{},
		model.PerkModel{},
		model.VoteModel{},
		model.PerkReadModelRow{},
		model.UserProfileReadModelRow{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
