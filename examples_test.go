package keyenv

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"
)

// newFakeServer starts a minimal KeyEnv API for the examples.
func newFakeServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/projects/demo/environments/production/secrets/export", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"secrets": [
			{"key": "DATABASE_URL", "value": "postgres://localhost/app"},
			{"key": "GREETING", "value": "hello world", "inherited_from": "env-base"}
		]}`)
	})
	mux.HandleFunc("/api/v1/projects/demo/environments/production/secrets/MISSING", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error": "secret not found", "code": "not_found"}`)
	})
	return httptest.NewServer(mux)
}

// Example_secretsMap exports an environment as a key/value map.
func Example_secretsMap() {
	srv := newFakeServer()
	defer srv.Close()

	client, err := New("demo-token", WithBaseURL(srv.URL))
	if err != nil {
		panic(err)
	}

	secrets, err := client.SecretsMap(context.Background(), "demo", "production")
	if err != nil {
		panic(err)
	}
	fmt.Println(secrets["DATABASE_URL"])
	// Output: postgres://localhost/app
}

// Example_envFile renders an environment in dotenv format.
func Example_envFile() {
	srv := newFakeServer()
	defer srv.Close()

	client, err := New("demo-token", WithBaseURL(srv.URL))
	if err != nil {
		panic(err)
	}

	content, err := client.EnvFile(context.Background(), "demo", "production")
	if err != nil {
		panic(err)
	}
	fmt.Print(content)
	// Output:
	// DATABASE_URL=postgres://localhost/app
	// GREETING="hello world"
}

// Example_errorHandling classifies a failure with the error predicates.
func Example_errorHandling() {
	srv := newFakeServer()
	defer srv.Close()

	client, err := New("demo-token", WithBaseURL(srv.URL))
	if err != nil {
		panic(err)
	}

	_, err = client.GetSecret(context.Background(), "demo", "production", "MISSING")
	var kerr *Error
	if errors.As(err, &kerr) && kerr.IsNotFound() {
		fmt.Println("secret does not exist")
	}
	// Output: secret does not exist
}

// Example_async waits on a Future-returning variant.
func Example_async() {
	srv := newFakeServer()
	defer srv.Close()

	client, err := New("demo-token", WithBaseURL(srv.URL), WithCacheTTL(time.Minute))
	if err != nil {
		panic(err)
	}

	future := client.GetSecretsAsync(context.Background(), "demo", "production")
	secrets, err := future.Wait()
	if err != nil {
		panic(err)
	}
	fmt.Println(len(secrets))
	// Output: 2
}
