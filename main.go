package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"amortizer/domain"
	"amortizer/repository"
	"amortizer/service"
)

const defaultCacheTTL = 15 * time.Minute

func main() {
	_ = godotenv.Load()

	quotes := service.NewQuoteService(
		repository.NewQuoteRepositoryMemory(),
		newCache(),
	)
	comparisons := service.NewTermComparisonService(quotes)

	root := &cobra.Command{
		Use:           "amortizer",
		Short:         "Fixed-rate loan amortization calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newQuoteCmd(quotes),
		newScheduleCmd(quotes),
		newCompareCmd(comparisons),
		newDemoCmd(quotes),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newCache picks the quote-cache backend: redis when REDIS_ADDR is set,
// otherwise an in-process cache. CACHE_TTL overrides the expiry.
func newCache() repository.CacheRepository {
	ttl := defaultCacheTTL
	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			ttl = d
		}
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return repository.NewRedisCache(addr, ttl)
	}
	return repository.NewMemoryCache(ttl)
}

func loanFlags(cmd *cobra.Command) {
	cmd.Flags().String("principal", "", "loan amount, e.g. 250000")
	cmd.Flags().String("rate", "", "annual rate as a decimal fraction, e.g. 0.045 for 4.5%")
	cmd.Flags().Int("years", 0, "term length in years")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")
}

func loanInputFromFlags(cmd *cobra.Command) (domain.LoanInput, error) {
	rawPrincipal, _ := cmd.Flags().GetString("principal")
	rawRate, _ := cmd.Flags().GetString("rate")
	years, _ := cmd.Flags().GetInt("years")

	principal, err := decimal.NewFromString(rawPrincipal)
	if err != nil {
		return domain.LoanInput{}, fmt.Errorf("invalid --principal %q: %w", rawPrincipal, err)
	}
	rate, err := decimal.NewFromString(rawRate)
	if err != nil {
		return domain.LoanInput{}, fmt.Errorf("invalid --rate %q: %w", rawRate, err)
	}

	return domain.LoanInput{Principal: principal, AnnualRate: rate, Years: years}, nil
}

func newQuoteCmd(quotes *service.QuoteService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute the monthly payment and lifetime cost of a loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := loanInputFromFlags(cmd)
			if err != nil {
				return err
			}
			quote, err := quotes.Quote(input)
			if err != nil {
				return err
			}
			printQuote(input, quote)
			return nil
		},
	}
	loanFlags(cmd)
	return cmd
}

func newScheduleCmd(quotes *service.QuoteService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the amortization schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := loanInputFromFlags(cmd)
			if err != nil {
				return err
			}

			limit, _ := cmd.Flags().GetInt("limit")
			if full, _ := cmd.Flags().GetBool("full"); full {
				limit = input.Years * 12
			}

			entries, err := quotes.Schedule(input, limit)
			if err != nil {
				return err
			}
			printSchedule(entries)
			return nil
		},
	}
	loanFlags(cmd)
	cmd.Flags().Int("limit", service.DefaultScheduleLimit, "number of periods to show")
	cmd.Flags().Bool("full", false, "show the whole term")
	return cmd
}

func newCompareCmd(comparisons *service.TermComparisonService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare terms in a range and rank them by preference",
		RunE: func(cmd *cobra.Command, args []string) error {
			rawPrincipal, _ := cmd.Flags().GetString("principal")
			rawRate, _ := cmd.Flags().GetString("rate")
			rawMaxPayment, _ := cmd.Flags().GetString("max-payment")

			principal, err := decimal.NewFromString(rawPrincipal)
			if err != nil {
				return fmt.Errorf("invalid --principal %q: %w", rawPrincipal, err)
			}
			rate, err := decimal.NewFromString(rawRate)
			if err != nil {
				return fmt.Errorf("invalid --rate %q: %w", rawRate, err)
			}
			maxPayment, err := decimal.NewFromString(rawMaxPayment)
			if err != nil {
				return fmt.Errorf("invalid --max-payment %q: %w", rawMaxPayment, err)
			}

			minYears, _ := cmd.Flags().GetInt("min-years")
			maxYears, _ := cmd.Flags().GetInt("max-years")
			preference, _ := cmd.Flags().GetString("preference")

			result, err := comparisons.Compare(domain.TermComparisonInput{
				Principal:         principal,
				AnnualRate:        rate,
				MinYears:          minYears,
				MaxYears:          maxYears,
				MaxMonthlyPayment: maxPayment,
				Preference:        preference,
			})
			if err != nil {
				return err
			}
			printComparison(result)
			return nil
		},
	}
	cmd.Flags().String("principal", "", "loan amount")
	cmd.Flags().String("rate", "", "annual rate as a decimal fraction")
	cmd.Flags().Int("min-years", 0, "shortest term to evaluate")
	cmd.Flags().Int("max-years", 0, "longest term to evaluate")
	cmd.Flags().String("max-payment", "", "highest acceptable monthly payment")
	cmd.Flags().String("preference", service.PreferenceBalanced,
		"minimize_interest, minimize_payment, or balanced")
	for _, name := range []string{"principal", "rate", "min-years", "max-years", "max-payment"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newDemoCmd(quotes *service.QuoteService) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the three reference loans",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("=== Loan Calculator ===")

			demos := []struct {
				description string
				input       domain.LoanInput
			}{
				{"30-year mortgage", domain.LoanInput{
					Principal:  decimal.NewFromInt(250_000),
					AnnualRate: decimal.RequireFromString("0.045"),
					Years:      30,
				}},
				{"5-year car loan", domain.LoanInput{
					Principal:  decimal.NewFromInt(25_000),
					AnnualRate: decimal.RequireFromString("0.0675"),
					Years:      5,
				}},
				{"Interest-free loan", domain.LoanInput{
					Principal:  decimal.NewFromInt(50_000),
					AnnualRate: decimal.Zero,
					Years:      10,
				}},
			}

			for _, d := range demos {
				fmt.Printf("\n%s:\n", d.description)
				fmt.Println("--------------------------------------------------")

				quote, err := quotes.Quote(d.input)
				if err != nil {
					return err
				}
				printQuote(d.input, quote)

				entries, err := quotes.Schedule(d.input, 3)
				if err != nil {
					return err
				}
				fmt.Println("\nFirst 3 Payments:")
				printSchedule(entries)
			}
			return nil
		},
	}
}

func printQuote(input domain.LoanInput, quote domain.LoanQuote) {
	fmt.Printf("Loan Amount:     $%s\n", input.Principal.StringFixed(2))
	fmt.Printf("Monthly Payment: $%s\n", quote.MonthlyPayment.StringFixed(2))
	fmt.Printf("Total Interest:  $%s\n", quote.TotalInterest.StringFixed(2))
	fmt.Printf("Total Cost:      $%s\n", quote.TotalCost.StringFixed(2))
}

func printSchedule(entries []domain.ScheduleEntry) {
	fmt.Printf("%-5s %-12s %-12s %-12s %-12s\n",
		"Pmt", "Payment", "Interest", "Principal", "Balance")
	fmt.Println("--------------------------------------------------")
	for _, e := range entries {
		fmt.Printf("%-5d $%-11s $%-11s $%-11s $%-11s\n",
			e.Period,
			e.Payment.StringFixed(2),
			e.Interest.StringFixed(2),
			e.Principal.StringFixed(2),
			e.Balance.StringFixed(2),
		)
	}
}

func printComparison(result domain.TermComparisonResult) {
	fmt.Printf("Recommended term: %d years\n\n", result.RecommendedYears)
	fmt.Printf("%-6s %-12s %-12s %-7s %s\n",
		"Years", "Payment", "Interest", "Score", "Reason")
	fmt.Println("------------------------------------------------------------")
	for _, opt := range result.Options {
		fmt.Printf("%-6d $%-11s $%-11s %-7.2f %s\n",
			opt.Years,
			opt.MonthlyPayment.StringFixed(2),
			opt.TotalInterest.StringFixed(2),
			opt.Score,
			opt.Reason,
		)
	}
}
