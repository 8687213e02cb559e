package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd",
		"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret",
		"-t", "30", "-w", "10", "-l", "60", "-q", "512",
		"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
	}

	config := &Config{}
	parseFlags(config)

	expected := &Config{
		EndpointAddrGRPC:      "127.0.0.1:9090",
		DatabaseDSN:           "db",
		SecretKey:             "secret",
		TokenValidityDuration: 30 * time.Minute,
		SchedulerCallTimeout:  10 * time.Second,
		ReminderLead:          time.Hour,
		NotifyQueueSize:       512,
		S3RootUser:            "user",
		S3RootPassword:        "password",
		S3Bucket:              "bucket",
		S3Region:              "us-west-1",
		S3BaseEndpoint:        "http://endpoint",
	}
	assert.Equal(t, expected, config)
}

func TestParseFlags_DefaultsPreserved(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd"}

	config := &Config{}
	config.LoadDefaults()
	parseFlags(config)

	assert.Equal(t, ":50051", config.EndpointAddrGRPC)
	assert.Equal(t, 5*time.Second, config.SchedulerCallTimeout)
	assert.Equal(t, 24*time.Hour, config.ReminderLead)
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd"}
	cfg := LoadConfig()

	assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.Equal(t, 256, cfg.NotifyQueueSize)
}
