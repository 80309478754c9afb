package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"intown_server/models"
	"intown_server/services"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	vcfPath   string
	statePath string
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	completeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	partialStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB86C"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Swipe through a local address book without a server",
	Long: `Device commands read contacts from a vCard export and keep swipe decisions
in a local JSON file, the way the mobile app keeps them on the phone.`,
}

var deviceQueueCmd = &cobra.Command{
	Use:   "queue",
	Short: "List contacts that have not been swiped",
	RunE:  runDeviceQueue,
}

var deviceSwipeCmd = &cobra.Command{
	Use:   "swipe [contact-id] [left|right]",
	Short: "Record a swipe decision",
	Args:  cobra.ExactArgs(2),
	RunE:  runDeviceSwipe,
}

var deviceReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show completeness of contacts swiped right",
	RunE:  runDeviceReport,
}

var deviceStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count contacts per swipe decision",
	RunE:  runDeviceStats,
}

func init() {
	deviceCmd.PersistentFlags().StringVar(&vcfPath, "vcf", "", "vCard address book export (required)")
	deviceCmd.PersistentFlags().StringVar(&statePath, "state", "swipes.json", "Swipe state file")
	_ = deviceCmd.MarkPersistentFlagRequired("vcf")

	deviceCmd.AddCommand(deviceQueueCmd)
	deviceCmd.AddCommand(deviceSwipeCmd)
	deviceCmd.AddCommand(deviceReportCmd)
	deviceCmd.AddCommand(deviceStatsCmd)
}

func newDeviceDeck() *services.Deck[models.DeviceContact] {
	return &services.Deck[models.DeviceContact]{
		Source: &services.VCardSource{Path: vcfPath, Logger: logger},
		Swipes: services.NewFileSwipeStore(statePath),
		Logger: logger,
	}
}

func runDeviceQueue(cmd *cobra.Command, args []string) error {
	pending, err := newDeviceDeck().Pending(context.Background())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%d contacts to swipe", len(pending))))
	for _, d := range pending {
		fmt.Fprintf(out, "%s  %s\n", d.Contact.Name, dimStyle.Render(d.Contact.ID))
	}
	return nil
}

func runDeviceSwipe(cmd *cobra.Command, args []string) error {
	status, ok := models.ParseSwipeStatus(args[1])
	if !ok {
		return services.ErrInvalidSwipeStatus
	}
	record, err := newDeviceDeck().Swipe(context.Background(), args[0], status)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Swiped %s %s at %s\n", record.ContactID, record.Status, record.Timestamp)
	return nil
}

func runDeviceReport(cmd *cobra.Command, args []string) error {
	accepted, err := newDeviceDeck().Accepted(context.Background())
	if err != nil {
		return err
	}
	reports := make([]models.DeviceCompletenessReport, 0, len(accepted))
	for _, d := range accepted {
		reports = append(reports, services.EvaluateDeviceContact(d.Contact))
	}
	writeDeviceReport(cmd.OutOrStdout(), reports)
	return nil
}

func writeDeviceReport(out io.Writer, reports []models.DeviceCompletenessReport) {
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%d contacts to visit", len(reports))))
	for _, r := range reports {
		style := partialStyle
		if len(r.MissingFields) == 0 {
			style = completeStyle
		}
		line := fmt.Sprintf("%-30s %s", r.Name, style.Render(fmt.Sprintf("%3.0f%%", r.CompletenessPercentage)))
		if len(r.MissingFields) > 0 {
			line += dimStyle.Render("  missing: " + strings.Join(r.MissingFields, ", "))
		}
		fmt.Fprintln(out, line)
	}
}

func runDeviceStats(cmd *cobra.Command, args []string) error {
	stats, err := newDeviceDeck().Stats(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "total %d  pending %d  left %d  right %d\n",
		stats.Total, stats.Pending, stats.Left, stats.Right)
	return nil
}
