package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/vangoframework/wms/internal/domain"
	"github.com/vangoframework/wms/internal/listview"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// listFlags are shared by the list commands.
type listFlags struct {
	search   string
	category string
	page     int
	pageSize int
	output   string
}

func (f *listFlags) register(cmd *cobra.Command, categoryFlag, categoryUsage string, pageSize int) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "search text")
	cmd.Flags().StringVar(&f.category, categoryFlag, listview.AllValue, categoryUsage)
	cmd.Flags().IntVarP(&f.page, "page", "p", 1, "page to show (clamped to the available pages)")
	cmd.Flags().IntVar(&f.pageSize, "page-size", pageSize, "rows per page")
	cmd.Flags().StringVarP(&f.output, "output", "o", "table", "output format: table or json")
}

func (f *listFlags) searchText() string {
	return norm.NFC.String(f.search)
}

func (f *listFlags) validate() error {
	switch f.output {
	case "table", "json":
		return nil
	default:
		return fmt.Errorf("unknown output format %q", f.output)
	}
}

var (
	employeeFlags listFlags
	workFlags     listFlags
	workTab       string
)

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "List employees",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := employeeFlags.validate(); err != nil {
			return err
		}
		status, err := domain.ParseEmployeeStatusFilter(employeeFlags.category)
		if err != nil {
			return err
		}

		b, err := openBackend(cmd.Context(), os.Getenv("DATABASE_URL"), newLogger(slog.LevelWarn))
		if err != nil {
			return err
		}
		defer b.close()

		employees, err := b.repo.ListEmployees(cmd.Context())
		if err != nil {
			return fmt.Errorf("list employees: %w", err)
		}

		list := domain.NewEmployeeList(employees, employeeFlags.pageSize)
		list.SetSearchText(employeeFlags.searchText())
		list.SetCategoryFilter(status)
		list.SetCurrentPage(employeeFlags.page)
		res := list.Result()

		out := cmd.OutOrStdout()
		if employeeFlags.output == "json" {
			return writeJSON(out, res)
		}
		return renderEmployees(out, res)
	},
}

var workCmd = &cobra.Command{
	Use:   "work",
	Short: "List work orders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := workFlags.validate(); err != nil {
			return err
		}
		workType, err := domain.ParseWorkTypeFilter(workFlags.category)
		if err != nil {
			return err
		}
		tab, err := domain.ParseWorkTab(workTab)
		if err != nil {
			return err
		}

		b, err := openBackend(cmd.Context(), os.Getenv("DATABASE_URL"), newLogger(slog.LevelWarn))
		if err != nil {
			return err
		}
		defer b.close()

		items, err := b.repo.ListWorkItems(cmd.Context())
		if err != nil {
			return fmt.Errorf("list work items: %w", err)
		}

		list := domain.NewWorkList(items, workFlags.pageSize)
		list.SetSearchText(workFlags.searchText())
		list.SetCategoryFilter(workType)
		list.SetScope(tab.Scope())
		list.SetCurrentPage(workFlags.page)
		res := list.Result()
		summary := domain.SummarizeWork(items)

		out := cmd.OutOrStdout()
		if workFlags.output == "json" {
			return writeJSON(out, map[string]any{"result": res, "summary": summary})
		}
		return renderWork(out, res, summary)
	},
}

func init() {
	employeeFlags.register(employeesCmd, "status", "status filter: all, 재직중 or 퇴사", listview.DefaultPageSize)
	workFlags.register(workCmd, "type", "work type filter: all, 배관, 설비, 전기 or 냉난방", 10)
	workCmd.Flags().StringVar(&workTab, "tab", string(domain.TabAll), "status tab: all, in-progress, waiting or completed")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderEmployees(w io.Writer, res listview.Result[domain.Employee]) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	fmt.Fprintln(tw, "ID\t직급\t이름\t생년월일\t연락처\t부서\t상태\t비고")
	for _, e := range res.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Position, e.Name, e.Birthdate, e.Contact, e.Department, e.Status, e.Note)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return renderFooter(w, res.Empty(), res.TotalMatches, res.CurrentPage, res.TotalPages)
}

func renderWork(w io.Writer, res listview.Result[domain.WorkItem], summary domain.WorkSummary) error {
	fmt.Fprintf(w, "전체 작업 %d건  진행중 %d건  완료 %d건  총 예산 %s\n",
		summary.Total,
		summary.Count(domain.WorkInProgress),
		summary.Count(domain.WorkCompleted),
		domain.FormatWon(summary.Budget))
	for _, st := range summary.ByType {
		fmt.Fprintf(w, "  %s %d건 %s\n", st.Type, st.Count, domain.FormatWon(st.Total))
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "작업 ID\t위치\t유형\t규모\t재료비\t인건비\t경비\t합계\t상태\t")
	for _, it := range res.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			it.ID, it.Location, it.Type, it.Size,
			it.MaterialCost, it.LaborCost, it.ExpenseCost, it.TotalCost(), it.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return renderFooter(w, res.Empty(), res.TotalMatches, res.CurrentPage, res.TotalPages)
}

func renderFooter(w io.Writer, empty bool, total, page, pages int) error {
	var b strings.Builder
	if empty {
		b.WriteString("검색 결과가 없습니다.\n")
	}
	fmt.Fprintf(&b, "\n%d건, %d/%d 페이지\n", total, page, pages)
	_, err := io.WriteString(w, b.String())
	return err
}
