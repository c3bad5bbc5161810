// Command setup validates the coordinator's store credentials and writes the
// env file the services load on startup. Run it once before first boot, or
// again whenever the store URL or API key changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"

	httpclient "github.com/campuspool/campuspool/internal/pkg/http"
)

func main() {
	outPath := flag.String("out", "config/coordinator.env", "path of the env file to write")
	skipProbe := flag.Bool("skip-probe", false, "write the env file without contacting the store")
	flag.Parse()

	v := viper.New()
	v.SetConfigFile(*outPath)
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Existing file values act as defaults; environment variables win.
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: could not read %s: %v\n", *outPath, err)
	}

	v.SetDefault("APP_ENV", "local")
	v.SetDefault("SERVER_PORT", 8081)
	v.SetDefault("NATS_URL", "nats://localhost:4222")
	v.SetDefault("JWT_ISSUER", "campuspool")
	v.SetDefault("COORDINATOR_REQUEST_TIMEOUT", 10)
	v.SetDefault("COORDINATOR_READ_RETRIES", 3)
	v.SetDefault("COORDINATOR_NOTIFICATION_KEEP", 50)
	v.SetDefault("LOG_LEVEL", "info")

	storeURL := strings.TrimRight(v.GetString("STORE_URL"), "/")
	apiKey := v.GetString("STORE_API_KEY")

	if storeURL == "" || apiKey == "" {
		fmt.Println("STORE_URL or STORE_API_KEY not set; the coordinator will run in disabled mode")
	} else if !*skipProbe {
		if err := probeStore(storeURL, apiKey); err != nil {
			fmt.Fprintf(os.Stderr, "store probe failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("store is reachable")
	}

	v.Set("STORE_URL", storeURL)
	v.Set("STORE_API_KEY", apiKey)

	if err := writeEnvFile(*outPath, v); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *outPath)
}

// probeStore hits the store's liveness endpoint with the configured key
func probeStore(storeURL, apiKey string) error {
	client := httpclient.NewClient(storeURL, apiKey, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	code, err := client.Do(ctx, http.MethodGet, "/health/live", nil, nil)
	if err != nil {
		return err
	}
	if code != http.StatusOK {
		return fmt.Errorf("store returned status %d", code)
	}
	return nil
}

// writeEnvFile emits the settings as KEY=VALUE lines, sorted for stable diffs
func writeEnvFile(path string, v *viper.Viper) error {
	keys := v.AllKeys()
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		sb.WriteString(strings.ToUpper(key))
		sb.WriteByte('=')
		sb.WriteString(v.GetString(key))
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
