package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var (
	baseURL      = flag.String("url", "http://localhost:8080", "base url of a running instance")
	targetRPS    = flag.Int("rps", 5, "requests per second")
	testDuration = flag.Duration("duration", 2*time.Minute, "attack duration")
)

var jsonHeader = http.Header{"Content-Type": []string{"application/json"}}

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Println("Usage: loadtest [-url URL] [-rps N] [-duration D] <scenario>")
		fmt.Println("Scenarios: health, developers, projects, all")
		os.Exit(1)
	}

	var metrics vegeta.Metrics
	var err error

	switch scenario := flag.Arg(0); scenario {
	case "health":
		metrics, err = testHealth()
	case "developers":
		metrics, err = testDevelopers()
	case "projects":
		metrics, err = testProjects()
	case "all":
		metrics, err = testAll()
	default:
		fmt.Printf("Unknown scenario: %s\n", scenario)
		os.Exit(1)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	printMetrics(metrics)
}

func testHealth() (vegeta.Metrics, error) {
	targeter := vegeta.NewStaticTargeter(vegeta.Target{
		Method: http.MethodGet,
		URL:    *baseURL + "/health",
	})

	return runAttack(targeter, "Health Check")
}

// Создание разработчика с уникальным email на каждый запрос, затем чтение списка
func testDevelopers() (vegeta.Metrics, error) {
	return runAttack(roundRobin(
		func(t *vegeta.Target) error {
			t.Method = http.MethodPost
			t.URL = *baseURL + "/developers"
			t.Body = developerBody()
			t.Header = jsonHeader
			return nil
		},
		static(http.MethodGet, "/developers"),
	), "Developer Operations")
}

func testProjects() (vegeta.Metrics, error) {
	developerId, err := seedDeveloper()
	if err != nil {
		return vegeta.Metrics{}, err
	}

	return runAttack(roundRobin(
		func(t *vegeta.Target) error {
			t.Method = http.MethodPost
			t.URL = *baseURL + "/projects"
			t.Body = projectBody(developerId)
			t.Header = jsonHeader
			return nil
		},
		static(http.MethodGet, "/projects"),
		static(http.MethodGet, fmt.Sprintf("/developers/%d/projects", developerId)),
	), "Project Operations")
}

func testAll() (vegeta.Metrics, error) {
	developerId, err := seedDeveloper()
	if err != nil {
		return vegeta.Metrics{}, err
	}

	return runAttack(roundRobin(
		static(http.MethodGet, "/health"),
		func(t *vegeta.Target) error {
			t.Method = http.MethodPost
			t.URL = *baseURL + "/developers"
			t.Body = developerBody()
			t.Header = jsonHeader
			return nil
		},
		static(http.MethodGet, "/developers"),
		static(http.MethodGet, fmt.Sprintf("/developers/%d", developerId)),
		func(t *vegeta.Target) error {
			t.Method = http.MethodPost
			t.URL = *baseURL + "/projects"
			t.Body = projectBody(developerId)
			t.Header = jsonHeader
			return nil
		},
		static(http.MethodGet, "/projects"),
	), "All Endpoints")
}

func static(method, path string) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		t.Method = method
		t.URL = *baseURL + path
		t.Body = nil
		t.Header = nil
		return nil
	}
}

// roundRobin чередует таргетеры по кругу; вызывается из нескольких горутин атакующего
func roundRobin(targeters ...vegeta.Targeter) vegeta.Targeter {
	var n atomic.Uint64
	return func(t *vegeta.Target) error {
		i := n.Add(1) - 1
		return targeters[i%uint64(len(targeters))](t)
	}
}

func seedDeveloper() (int64, error) {
	resp, err := http.Post(*baseURL+"/developers", "application/json", bytes.NewReader(developerBody()))
	if err != nil {
		return 0, fmt.Errorf("seed developer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("seed developer: unexpected status %d", resp.StatusCode)
	}

	var dev struct {
		Id int64 `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&dev); err != nil {
		return 0, fmt.Errorf("seed developer: %w", err)
	}
	return dev.Id, nil
}

func runAttack(targeter vegeta.Targeter, name string) (vegeta.Metrics, error) {
	rate := vegeta.Rate{Freq: *targetRPS, Per: time.Second}
	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, *testDuration, name) {
		metrics.Add(res)
	}
	metrics.Close()

	return metrics, nil
}

func developerBody() []byte {
	id := uuid.NewString()[:8]
	body, _ := json.Marshal(map[string]string{
		"name":  "load " + id,
		"email": "load_" + id + "@example.com",
	})
	return body
}

func projectBody(developerId int64) []byte {
	body, _ := json.Marshal(map[string]any{
		"name":          "load project " + uuid.NewString()[:8],
		"description":   "created by load test",
		"estimatedTime": "1 week",
		"repository":    "https://github.com/example/load",
		"startDate":     time.Now().Format(time.DateOnly),
		"developerId":   developerId,
	})
	return body
}

func printMetrics(metrics vegeta.Metrics) {
	fmt.Printf("\n=== Load Test Results ===\n\n")
	fmt.Printf("Requests Total:     %d\n", metrics.Requests)
	fmt.Printf("Success Rate:       %.2f%%\n", metrics.Success*100)
	fmt.Printf("Duration:           %v\n", metrics.Duration)

	if metrics.Requests == 0 {
		return
	}

	fmt.Printf("\nLatency:\n")
	fmt.Printf("  Mean:             %v\n", metrics.Latencies.Mean)
	fmt.Printf("  P50:              %v\n", metrics.Latencies.P50)
	fmt.Printf("  P95:              %v\n", metrics.Latencies.P95)
	fmt.Printf("  P99:              %v\n", metrics.Latencies.P99)
	fmt.Printf("  Max:              %v\n", metrics.Latencies.Max)

	fmt.Printf("\nThroughput:\n")
	fmt.Printf("  Requests/sec:     %.2f\n", metrics.Rate)

	fmt.Printf("\nStatus Codes:\n")
	for code, count := range metrics.StatusCodes {
		fmt.Printf("  %s: %d\n", code, count)
	}

	fmt.Printf("\nErrors:\n")
	if len(metrics.Errors) == 0 {
		fmt.Printf("  None\n")
	}
	for _, err := range metrics.Errors {
		fmt.Printf("  %s\n", err)
	}
	fmt.Printf("\n")
}
