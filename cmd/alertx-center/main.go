package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kroue/AlertX/internal/bootstrap"
	"github.com/kroue/AlertX/internal/config"
	"github.com/kroue/AlertX/internal/domain/model"
	"github.com/kroue/AlertX/internal/domain/service"
	"github.com/kroue/AlertX/internal/handler"
)

var (
	operatorID string

	sendClass   string
	sendKind    string
	sendZones   []string
	sendPaths   []string
	sendMessage string
	sendDryRun  bool

	mapID   string
	surface string

	locateLat float64
	locateLng float64
)

var rootCmd = &cobra.Command{
	Use:   "alertx-center",
	Short: "AlertX operator console",
	Long:  `Compose and dispatch barangay alerts, inspect zones and manage cached map boundaries.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List zones and their paths",
	RunE:  runZones,
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Compose and dispatch an alert",
	Long:  `Selects the given zones and paths, composes the message (the auto preview unless --message is set) and dispatches it.`,
	RunE:  runSend,
}

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Resolve a coordinate to its zone",
	RunE:  runLocate,
}

var boundaryCmd = &cobra.Command{
	Use:   "boundary",
	Short: "Inspect or clear a cached map boundary",
}

var boundaryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the cached boundary as JSON",
	RunE:  runBoundaryShow,
}

var boundaryClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the cached boundary",
	RunE:  runBoundaryClear,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&operatorID, "operator", "o", "", "Operator id recorded as sentBy")

	sendCmd.Flags().StringVarP(&sendClass, "class", "c", model.AlertClassEmergency, "Alert class (emergency|warning)")
	sendCmd.Flags().StringVarP(&sendKind, "kind", "k", "", "Alert kind; unknown kinds are added as custom kinds")
	sendCmd.Flags().StringSliceVarP(&sendZones, "zone", "z", nil, "Zone id to target (repeatable)")
	sendCmd.Flags().StringSliceVarP(&sendPaths, "path", "p", nil, "Path name to target (repeatable)")
	sendCmd.Flags().StringVarP(&sendMessage, "message", "m", "", "Message text; defaults to the auto preview")
	sendCmd.Flags().BoolVar(&sendDryRun, "dry-run", false, "Print the draft without dispatching")

	locateCmd.Flags().Float64Var(&locateLat, "lat", 0, "Latitude")
	locateCmd.Flags().Float64Var(&locateLng, "lng", 0, "Longitude")

	boundaryCmd.PersistentFlags().StringVar(&mapID, "map", "brgy26", "Map context id")
	boundaryCmd.PersistentFlags().StringVar(&surface, "surface", string(model.PointFraction), "Point representation (fraction|geo)")
	boundaryCmd.AddCommand(boundaryShowCmd, boundaryClearCmd)

	rootCmd.AddCommand(zonesCmd, sendCmd, locateCmd, boundaryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openDeps(ctx context.Context) (*config.Config, *bootstrap.Dependencies, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	deps, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, deps, nil
}

func runZones(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	_, deps, err := openDeps(ctx)
	if err != nil {
		return err
	}
	defer deps.Close()

	zones, err := deps.Zones.GetAll(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, z := range zones {
		area := ""
		if z.Area != nil {
			area = " (area)"
		}
		fmt.Fprintf(out, "%s\t%s%s\n", z.ID, z.Name, area)
		for _, p := range z.Paths {
			fmt.Fprintf(out, "\t- %s\n", p)
		}
	}
	return nil
}

func runSend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	class, ok := model.GetAlertClass(sendClass)
	if !ok {
		return fmt.Errorf("unknown class %q (want one of %s)", sendClass, strings.Join(model.GetAllAlertClasses(), ", "))
	}

	_, deps, err := openDeps(ctx)
	if err != nil {
		return err
	}
	defer deps.Close()

	zones, err := deps.Zones.GetAll(ctx)
	if err != nil {
		return err
	}
	selection, err := service.NewZoneSelection(zones)
	if err != nil {
		return err
	}

	composer := service.NewAlertComposer(class, selection)
	if sendKind != "" {
		composer.AddCustomKind(sendKind)
		if err := composer.SetKind(strings.TrimSpace(sendKind)); err != nil {
			return err
		}
	}
	for _, z := range sendZones {
		if !composer.ToggleZone(z) {
			return fmt.Errorf("unknown zone %q", z)
		}
	}
	if len(sendPaths) > 0 && !composer.PathsTargetable() {
		return fmt.Errorf("%s alerts target whole zones; --path is not accepted", class.Name)
	}
	for _, p := range sendPaths {
		if !composer.TogglePath(p) && !selection.IsPathSelected(p) {
			return fmt.Errorf("unknown path %q", p)
		}
	}
	if sendMessage != "" {
		composer.SetMessage(sendMessage)
	}

	draft := composer.Draft(nil)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n%s\n", composer.Summary(), draft.Message)
	if composer.OverCap() {
		fmt.Fprintf(out, "⚠️ Message is %d characters, over the %d character limit\n", composer.MessageLength(), composer.Cap())
	}
	if sendDryRun {
		return printJSON(cmd, draft)
	}

	if operatorID != "" {
		ctx = handler.WithUserID(ctx, operatorID)
	}
	record, err := service.NewSubmissionGate(deps.Alerts, handler.ContextIdentity{}).Dispatch(ctx, draft)
	if err != nil {
		return err
	}
	return printJSON(cmd, record)
}

func runLocate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	_, deps, err := openDeps(ctx)
	if err != nil {
		return err
	}
	defer deps.Close()

	zones, err := deps.Zones.GetAll(ctx)
	if err != nil {
		return err
	}
	locator, err := service.NewZoneLocator(zones)
	if err != nil {
		return err
	}

	zoneID, ok := locator.Locate(locateLat, locateLng)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "outside every zone")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), zoneID)
	return nil
}

func openStore(cmd *cobra.Command) (*service.AnnotationStore, *bootstrap.Dependencies, error) {
	kind := model.PointKind(surface)
	if kind != model.PointFraction && kind != model.PointGeo {
		return nil, nil, fmt.Errorf("unknown surface %q", surface)
	}
	_, deps, err := openDeps(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	return service.NewAnnotationStore(mapID, kind, deps.Cache), deps, nil
}

func runBoundaryShow(cmd *cobra.Command, args []string) error {
	store, deps, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer deps.Close()

	boundary, outcome := store.LoadBoundary(cmd.Context())
	return printJSON(cmd, model.BoundaryResponse{Boundary: boundary, Outcome: string(outcome)})
}

func runBoundaryClear(cmd *cobra.Command, args []string) error {
	store, deps, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer deps.Close()

	outcome := store.ClearBoundary(cmd.Context())
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", model.BoundaryCacheKey(mapID), outcome)
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
