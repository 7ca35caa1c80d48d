package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	auditStore "github.com/wso2/clan-chest-service/internal/audit/store"
	"github.com/wso2/clan-chest-service/internal/system/config"
	"github.com/wso2/clan-chest-service/internal/system/constants"
	log2 "github.com/wso2/clan-chest-service/internal/system/log"
	"github.com/wso2/clan-chest-service/internal/system/managers"
	"github.com/wso2/clan-chest-service/internal/system/schedulers"
	"github.com/wso2/clan-chest-service/internal/system/workers"
)

const configFile = "repository/conf/deployment.yaml"

func main() {
	ccsHome := getCCSHome()

	envFiles, _ := filepath.Glob("config/*.env")
	_ = godotenv.Load(envFiles...)

	ccsConfig, err := config.LoadConfig(ccsHome, configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := config.InitializeCCSRuntime(ccsHome, ccsConfig); err != nil {
		log.Fatalf("Failed to initialize runtime configuration: %v", err)
	}

	if err := log2.Init(ccsConfig.Log.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := log2.GetLogger()

	validateDataSource(ccsConfig)

	// Background processing: report scoring queue and the approval poller.
	workers.StartReportWorker()
	schedulers.StartApprovalPoller()
	defer schedulers.StopApprovalPoller()
	defer auditStore.CloseAuditStore()

	serverAddr := fmt.Sprintf("%s:%d", ccsConfig.Addr.Host, ccsConfig.Addr.Port)
	mux := enableCORS(initMultiplexer())

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener.", log2.Error(err))
	}
	logger.Info(fmt.Sprintf("Clan chest service started on: %s", serverAddr))

	server := &http.Server{Handler: mux}
	if err := server.Serve(ln); err != nil {
		logger.Error("Failed to serve requests.", log2.Error(err))
	}
}

func validateDataSource(ccsConfig *config.Config) {

	ds := ccsConfig.DataSource
	if ds.Hostname == "" || ds.Port == 0 || ds.Name == "" || ds.Username == "" {
		log.Fatal("One or more PostgreSQL configuration values are missing")
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log2.GetLogger().Fatal("Failed to register the services.", log2.Error(err))
	}
	return mux
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getCCSHome() string {

	ccsHomeFlag := flag.String("ccsHome", "", "Path to the clan chest service home directory")
	flag.Parse()

	if *ccsHomeFlag != "" {
		return *ccsHomeFlag
	}
	dir, err := os.Getwd()
	if err != nil {
		log.Fatalf("Failed to get current working directory: %v", err)
	}
	return dir
}
