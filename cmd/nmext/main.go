package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bananabit-dev/neonmachines/internal/api"
	"github.com/bananabit-dev/neonmachines/internal/config"
	"github.com/bananabit-dev/neonmachines/internal/detection"
	"github.com/bananabit-dev/neonmachines/internal/extension"
	"github.com/bananabit-dev/neonmachines/internal/manifest"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "nmext",
		Short: "Neonmachines core extension - file analysis and code generation tools",
		Run:   runOnce,
	}

	var serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the extension tools over HTTP",
		Run:   runServer,
	}

	var installCmd = &cobra.Command{
		Use:   "install",
		Short: "Write this extension's nmmcp.json into the host's extensions directory",
		Run:   runInstall,
	}

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List extensions discovered in the host's extension directories",
		Run:   runList,
	}

	var uninstallCmd = &cobra.Command{
		Use:   "uninstall",
		Short: "Remove this extension's manifest from the host's extensions directory",
		Run:   runUninstall,
	}

	rootCmd.AddCommand(serveCmd, installCmd, listCmd, uninstallCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// runOnce is the stdio contract the host invokes: one JSON request on
// stdin, one JSON response on stdout, exit 0 regardless of logical
// errors. Nothing else may be written to stdout or stderr.
func runOnce(cmd *cobra.Command, args []string) {
	_ = extension.Run(os.Stdin, os.Stdout)
}

func runServer(cmd *cobra.Command, args []string) {
	// Load configuration
	cfg := config.NewConfig()

	// Secret scanning is best effort: serve without it if the rules file
	// is absent.
	engine, err := detection.NewEngine(cfg.RulesPath)
	if err != nil {
		log.Printf("Warning: secret scanning disabled: %v", err)
		engine = nil
	}

	h := api.NewAPI(cfg, engine)

	// Create router
	router := mux.NewRouter()
	router.HandleFunc("/execute", h.HandleExecute).Methods("POST")
	router.HandleFunc("/tools", h.HandleTools).Methods("GET")
	router.HandleFunc("/healthz", h.HandleHealth).Methods("GET")
	router.HandleFunc("/metrics", h.HandleMetrics).Methods("GET")

	// Create HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Channel to listen for errors coming from the listener
	serverErrors := make(chan error, 1)

	// Start the server
	go func() {
		log.Printf("Starting extension gateway %s on port %d", cfg.ExtensionID, cfg.ServerPort)
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-serverErrors:
		log.Fatalf("Error starting server: %v", err)
	case <-shutdown:
		log.Println("Shutting down gateway...")
		server.Close()
		log.Println("Gateway shut down successfully")
	}
}

func runInstall(cmd *cobra.Command, args []string) {
	cfg := config.NewConfig()

	entryPoint, err := os.Executable()
	if err != nil {
		log.Fatalf("Failed to locate extension binary: %v", err)
	}

	path, err := installManifest(cfg.ExtensionsDir, entryPoint)
	if err != nil {
		log.Fatalf("Failed to install extension: %v", err)
	}
	log.Printf("Installed extension manifest at %s", path)
}

func runList(cmd *cobra.Command, args []string) {
	registry := manifest.NewRegistry()
	if err := registry.LoadAll(); err != nil {
		log.Fatalf("Failed to load extensions: %v", err)
	}
	listExtensions(os.Stdout, registry)
}

// listExtensions renders every discovered extension tool, one per line.
func listExtensions(w io.Writer, registry *manifest.Registry) {
	fmt.Fprintf(w, "Loaded %d extensions\n", registry.Len())
	for _, tool := range registry.ListTools() {
		fmt.Fprintf(w, "  %s - %s\n", tool[0], tool[1])
	}
}

func runUninstall(cmd *cobra.Command, args []string) {
	cfg := config.NewConfig()

	name, err := uninstallExtension(cfg.ExtensionsDir)
	if err != nil {
		log.Fatalf("Failed to uninstall extension: %v", err)
	}
	log.Printf("Uninstalled extension %s", name)
}

// uninstallExtension removes this extension's directory from
// extensionsDir, going through the registry so a missing or broken
// install surfaces as "extension not found".
func uninstallExtension(extensionsDir string) (string, error) {
	registry := manifest.NewRegistry()
	if err := registry.LoadDirectory(extensionsDir); err != nil {
		return "", err
	}

	name := manifest.Default("").Name
	if _, ok := registry.Get(name); !ok {
		return "", fmt.Errorf("extension not found: %s", name)
	}
	if err := registry.Remove(name); err != nil {
		return "", err
	}

	if err := os.RemoveAll(filepath.Join(extensionsDir, name)); err != nil {
		return "", fmt.Errorf("failed to remove extension directory: %w", err)
	}
	return name, nil
}

// installManifest writes the extension's nmmcp.json into
// <extensionsDir>/ext_neonmachines/, backing up any existing manifest
// first so a reinstall never destroys host-side edits.
func installManifest(extensionsDir, entryPoint string) (string, error) {
	ext := manifest.Default(entryPoint)
	if err := ext.Validate(); err != nil {
		return "", fmt.Errorf("invalid manifest: %w", err)
	}

	dir := filepath.Join(extensionsDir, ext.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create extension directory: %w", err)
	}

	path := filepath.Join(dir, manifest.MetadataFile)

	// Create backup of any existing manifest
	if existing, err := os.ReadFile(path); err == nil {
		backupPath := path + ".bak"
		if err := os.WriteFile(backupPath, existing, 0644); err != nil {
			return "", fmt.Errorf("failed to create backup file: %w", err)
		}
	}

	data, err := json.MarshalIndent(ext, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}

	return path, nil
}
