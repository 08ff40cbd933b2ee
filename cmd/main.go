package main

import (
	"context"
	"log"
	"time"

	"staffdir/inner/common"
	"staffdir/inner/countries"
	"staffdir/inner/employee"
	"staffdir/inner/grade"
	"staffdir/inner/info"
	"staffdir/inner/query"
	"staffdir/inner/store"
	"staffdir/inner/validator"
	"staffdir/inner/web"
)

// @title Staff Directory API
// @version 1.0
// @description Staff directory: employee and grade level management with file-backed persistence
// @BasePath /api/v1
func main() {
	cfg := common.GetConfig(".env")
	logger := common.NewLogger(cfg)
	defer func() {
		_ = logger.Sync()
	}()

	vld := validator.New()
	dataStore := store.NewStore(cfg.DataDir, logger)

	employeeRepo := employee.NewRepository(dataStore)
	gradeRepo := grade.NewRepository(dataStore)

	gradeService := grade.NewService(gradeRepo, employeeRepo, vld, logger)
	employeeService := employee.NewService(employeeRepo, gradeRepo, vld, logger)

	// справочник стран загружается один раз на старте;
	// при сбое остаётся встроенный список
	countriesService := countries.NewService(cfg, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	countriesService.Load(ctx)
	cancel()

	server := web.NewServer(logger)

	// маршруты поиска регистрируются раньше параметризованного "/employees/:id"
	query.NewController(server, employeeRepo, query.NewEngine(), logger).RegisterRoutes()
	employee.NewController(server, employeeService, logger).RegisterRoutes()
	grade.NewController(server, gradeService, logger).RegisterRoutes()
	countries.NewController(server, countriesService).RegisterRoutes()
	info.NewController(server, cfg, dataStore).RegisterRoutes()

	if err := server.App.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
