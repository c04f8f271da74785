package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// TransactionRequest is the manual transaction form
type TransactionRequest struct {
	UserID uint64 `json:"userId"`
	Type   string `json:"type"`
	Amount int64  `json:"amount"`
}

type money struct {
	Amount int64 `json:"amount"`
}

type userView struct {
	User struct {
		ID      uint64 `json:"id"`
		Balance money  `json:"balance"`
	} `json:"user"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	UserID       uint64
	Delta        int64
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ExpectedDelta      map[uint64]int64
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// TransactionScenario defines a transaction scenario
type TransactionScenario struct {
	Name   string
	Type   string
	Amount int64
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	userIDsStr := flag.String("u", "1,2,3", "Comma-separated list of user IDs to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	username := flag.String("user", "admin", "Operator username")
	password := flag.String("password", "admin", "Operator password")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var userIDs []uint64
	for _, idStr := range strings.Split(*userIDsStr, ",") {
		var id uint64
		if _, err := fmt.Sscanf(idStr, "%d", &id); err == nil && id > 0 {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		userIDs = []uint64{1}
	}

	scenarios := []TransactionScenario{
		{"Credit Small", "credit", 10},
		{"Credit Large", "credit", 300},
		{"Debit Small", "debit", 15},
		{"Debit Large", "debit", 250},
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		fail(err)
	}
	client := &http.Client{
		Timeout: 10 * time.Second,
		Jar:     jar,
		// Keep redirects visible so a lost session shows up as a failure
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}

	if err := login(client, *baseURL, *username, *password); err != nil {
		fail(err)
	}

	before := make(map[uint64]int64, len(userIDs))
	for _, id := range userIDs {
		balance, err := fetchBalance(client, *baseURL, id)
		if err != nil {
			fail(err)
		}
		before[id] = balance
	}

	fmt.Printf("Load testing ledger across %d users: %v\n", len(userIDs), userIDs)
	fmt.Printf("Concurrency: %d goroutines, %d requests, %d ms delay\n", *concurrency, *totalRequests, *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ExpectedDelta: make(map[uint64]int64),
		ScenarioStats: make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, userIDs, scenarios, jobs, results, stats)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()
	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		stats.Lock.Lock()
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		if result.Success {
			stats.SuccessfulRequests++
			stats.ExpectedDelta[result.UserID] += result.Delta
		} else {
			stats.FailedRequests++
			errMsg := "unknown"
			if result.Error != nil {
				errMsg = result.Error.Error()
			}
			stats.ErrorCounts[errMsg]++
		}
		stats.Lock.Unlock()
	}
	stats.TotalTime = time.Since(startTime)

	printResults(stats)

	fmt.Println("\n----------------- BALANCE CHECK -----------------")
	consistent := true
	for _, id := range userIDs {
		after, err := fetchBalance(client, *baseURL, id)
		if err != nil {
			fail(err)
		}
		want := before[id] + stats.ExpectedDelta[id]
		status := "ok"
		if after != want {
			status = "LOST UPDATE"
			consistent = false
		}
		fmt.Printf("User %d: before %d, after %d, expected %d  %s\n", id, before[id], after, want, status)
	}
	if !consistent {
		os.Exit(1)
	}
}

func login(client *http.Client, baseURL, username, password string) error {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := client.Post(baseURL+"/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with HTTP status code %d", resp.StatusCode)
	}
	return nil
}

func fetchBalance(client *http.Client, baseURL string, userID uint64) (int64, error) {
	resp, err := client.Get(fmt.Sprintf("%s/users/%d", baseURL, userID))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("user %d: HTTP status code %d", userID, resp.StatusCode)
	}

	var view userView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		return 0, err
	}
	return view.User.Balance.Amount, nil
}

func worker(client *http.Client, baseURL string, delayMs int, userIDs []uint64,
	scenarios []TransactionScenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		userID := userIDs[rand.Intn(len(userIDs))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		jsonData, err := json.Marshal(TransactionRequest{UserID: userID, Type: scenario.Type, Amount: scenario.Amount})
		if err != nil {
			results <- TestResult{Error: err}
			continue
		}

		startTime := time.Now()
		resp, err := client.Post(baseURL+"/transactions", "application/json", bytes.NewReader(jsonData))
		result := TestResult{UserID: userID, ResponseTime: time.Since(startTime)}

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode == http.StatusOK
			if result.Success {
				result.Delta = scenario.Amount
				if scenario.Type == "debit" {
					result.Delta = -scenario.Amount
				}
			} else {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *TestStats) {
	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var p50, p90, p99 time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		sorted := make([]time.Duration, n)
		copy(sorted, stats.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		p50, p90, p99 = sorted[n*50/100], sorted[n*90/100], sorted[n*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed Requests:     %d (insufficient balance rejections count here)\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Committed TPS:       %.2f\n", tps)
	fmt.Printf("P50 / P90 / P99:     %v / %v / %v\n", p50, p90, p99)

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests\n", scenario, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "load test:", err)
	os.Exit(1)
}
