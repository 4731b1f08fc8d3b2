package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

type ValkeyClient struct {
	Client valkey.Client
}

func InitValkey() *ValkeyClient {
	valkeyOnce.Do(func() {
		valkeyAddr := os.Getenv("VALKEY_INIT_ADDRESS")
		valkeyPassword := os.Getenv("VALKEY_PASSWORD")
		useTLS := os.Getenv("VALKEY_TLS") == "true"

		opts := valkey.ClientOption{
			InitAddress: []string{
				valkeyAddr,
			},
			Password:         valkeyPassword,
			ConnWriteTimeout: 5 * time.Second,
			SelectDB:         0,
		}

		if useTLS {
			opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
		}

		client, err := valkey.NewClient(opts)
		if err != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()

		c := client.Do(ctx, client.B().Ping().Build())
		if c.Error() != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", c.Error()))
		}

		slog.Info("[ValkeyClient] Successfully connected to valkey")

		valkeyInstance = &ValkeyClient{Client: client}
	})
	return valkeyInstance
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

// Get returns the cached value for key, or an error on miss or failure.
func (vc *ValkeyClient) Get(ctx context.Context, key string) (string, error) {
	res := vc.DoWithRetry(ctx, vc.Client.B().Get().Key(key).Build(), 3)
	if err := res.Error(); err != nil {
		return "", err
	}
	return res.ToString()
}

// Set stores value under key with the given TTL.
func (vc *ValkeyClient) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	cmd := vc.Client.B().Set().Key(key).Value(value).Ex(ttl).Build()
	res := vc.DoWithRetry(ctx, cmd, 3)
	return res.Error()
}

func (vc *ValkeyClient) DoWithRetry(ctx context.Context, completed valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		result = vc.Client.Do(ctx, completed)
		if result.Error() == nil {
			break
		}

		if valkey.IsValkeyNil(result.Error()) {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))

		time.Sleep(250 * time.Millisecond)
	}

	return result
}
