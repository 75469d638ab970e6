package tests

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type paperTraderContainer struct {
	testcontainers.Container
	URI string
}

func setupPaperTrader(ctx context.Context, t *testing.T) (*paperTraderContainer, error) {
	natPort := nat.Port("8080/tcp")

	req := testcontainers.ContainerRequest{
		FromDockerfile: testcontainers.FromDockerfile{
			Context:    "../",
			Dockerfile: "Dockerfile",
		},
		ExposedPorts: []string{string(natPort)},
		Env: map[string]string{
			"PORT":           "8080",
			"GIN_MODE":       "release",
			"DATABASE_URL":   "sqlite::memory:",
			"QUOTE_API_KEY":  "e2e-test-key",
			"JWT_SECRET":     "e2e-jwt-secret",
			"SESSION_SECRET": "e2e-session-secret",
		},
		WaitingFor: wait.ForHTTP("/login").
			WithPort(natPort).
			WithStatusCodeMatcher(func(status int) bool {
				return status == http.StatusOK
			}).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	var ptc *paperTraderContainer
	if container != nil {
		ptc = &paperTraderContainer{Container: container}
	}
	if err != nil {
		return ptc, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return ptc, err
	}

	mappedPort, err := container.MappedPort(ctx, natPort)
	if err != nil {
		return ptc, err
	}

	ptc.URI = fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
	return ptc, nil
}

func TestE2E_RegisterLoginAndPortfolio(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ctx := context.Background()
	app, err := setupPaperTrader(ctx, t)
	if app != nil {
		defer app.Terminate(ctx)
	}
	require.NoError(t, err)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	// Unauthenticated portfolio request lands on the login page.
	resp, err := client.Get(app.URI + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Log In")

	// Register an account.
	resp, err = client.PostForm(app.URI+"/register", url.Values{
		"username":     {"e2e-user"},
		"password":     {"abcdefg!"},
		"confirmation": {"abcdefg!"},
	})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasSuffix(resp.Request.URL.Path, "/login"))

	// Log in and land on the portfolio.
	resp, err = client.PostForm(app.URI+"/login", url.Values{
		"username": {"e2e-user"},
		"password": {"abcdefg!"},
	})
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Portfolio")
	assert.Contains(t, string(body), "10000.00")
}
