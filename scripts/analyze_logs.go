package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// LogStats aggregates one day of API log activity
type LogStats struct {
	TotalErrors       int
	OrdersCreated     int
	PaymentsSucceeded int
	PaymentsFailed    int
	WebhookRejections int
	LoginFailures     int
	CouponRejections  int
	UploadRejections  int
	ErrorPatterns     map[string]int
}

func main() {
	today := time.Now().Format("2006-01-02")
	logDir := "./logs"

	stats := &LogStats{
		ErrorPatterns: make(map[string]int),
	}

	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)

	printReport(stats)
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++

		switch {
		case strings.Contains(line, "Webhook signature verification failed"):
			stats.WebhookRejections++
		case strings.Contains(line, "Login failed"):
			stats.LoginFailures++
		case strings.Contains(line, "Rejected upload"):
			stats.UploadRejections++
		case strings.Contains(line, "Coupon") && strings.Contains(line, "rejected"):
			stats.CouponRejections++
		case strings.Contains(line, "Rejected status transition"):
			stats.ErrorPatterns["invalid status transition"]++
		default:
			recordErrorPattern(line, stats)
		}
	}
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	orderCreated := regexp.MustCompile(`Order ORD-\d+ created`)
	paymentOK := regexp.MustCompile(`Order ORD-\d+ marked paid`)
	paymentKO := regexp.MustCompile(`Order ORD-\d+ marked failed`)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case orderCreated.MatchString(line):
			stats.OrdersCreated++
		case paymentOK.MatchString(line):
			stats.PaymentsSucceeded++
		case paymentKO.MatchString(line):
			stats.PaymentsFailed++
		}
	}
}

// recordErrorPattern buckets error lines by their leading phrase so repeated
// failures surface at the top of the report.
func recordErrorPattern(line string, stats *LogStats) {
	idx := strings.Index(line, "ERROR: ")
	if idx < 0 {
		return
	}
	msg := line[idx+len("ERROR: "):]
	if colon := strings.Index(msg, ":"); colon > 0 {
		msg = msg[:colon]
	}
	msg = strings.TrimSpace(msg)
	if msg != "" {
		stats.ErrorPatterns[msg]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("=== ArtisanCart Daily Log Report ===")
	fmt.Printf("Orders created:       %d\n", stats.OrdersCreated)
	fmt.Printf("Payments succeeded:   %d\n", stats.PaymentsSucceeded)
	fmt.Printf("Payments failed:      %d\n", stats.PaymentsFailed)
	fmt.Printf("Webhook rejections:   %d\n", stats.WebhookRejections)
	fmt.Printf("Login failures:       %d\n", stats.LoginFailures)
	fmt.Printf("Coupon rejections:    %d\n", stats.CouponRejections)
	fmt.Printf("Upload rejections:    %d\n", stats.UploadRejections)
	fmt.Printf("Total errors:         %d\n", stats.TotalErrors)

	if len(stats.ErrorPatterns) == 0 {
		return
	}

	fmt.Println("\nTop error patterns:")
	type pattern struct {
		msg   string
		count int
	}
	var patterns []pattern
	for msg, count := range stats.ErrorPatterns {
		patterns = append(patterns, pattern{msg, count})
	}
	sort.Slice(patterns, func(i, j int) bool { return patterns[i].count > patterns[j].count })
	for i, p := range patterns {
		if i >= 10 {
			break
		}
		fmt.Printf("  %3dx %s\n", p.count, p.msg)
	}
}
