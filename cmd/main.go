package main

import (
	"log"

	"glucolog/config"
	"glucolog/routes"
	"glucolog/services"
	"glucolog/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	db := config.DB

	catalog := services.NewFoodCatalogService(db)
	matcher := services.NewFoodMatcher(catalog)
	glucose := services.NewGlucoseService(db)

	deps := routes.Deps{
		Auth:     services.NewAuthService(db),
		Users:    services.NewUserService(db),
		Catalog:  catalog,
		Glucose:  glucose,
		Meals:    services.NewMealService(db, catalog),
		Analysis: services.NewAnalysisService(db, matcher, glucose),
		Hub:      services.NewRealtimeHub(),
	}

	if advisory, err := services.NewAdvisoryService(db); err != nil {
		log.Printf("Advisory service disabled: %v", err)
	} else {
		deps.Advisory = advisory
	}

	if push, err := services.NewPushService(db); err != nil {
		log.Printf("Push service disabled: %v", err)
	} else {
		deps.Push = push
	}

	services.InitAlertDeps(db, deps.Hub, deps.Push)

	r := routes.SetupRouter(deps)
	r.Run(":8080")
}
