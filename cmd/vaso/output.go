package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/eshan-bhimani/vaso-map/internal/model"
	"github.com/eshan-bhimani/vaso-map/internal/ui"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func printVesselListTable(vessels []*model.VesselSummary, total int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tOXYGENATION\tREGION\tALIASES")
	for _, v := range vessels {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			v.ID,
			v.Name,
			ui.RenderVesselType(v.Type),
			v.Oxygenation,
			v.Region,
			strings.Join(v.Aliases, ", "),
		)
	}
	w.Flush()
	fmt.Printf("\n%d vessels (%d total)\n", len(vessels), total)
}

func printVesselDetail(d *model.VesselDetail) {
	fmt.Printf("ID:             %d\n", d.ID)
	fmt.Printf("Name:           %s\n", d.Name)
	fmt.Printf("Type:           %s\n", ui.RenderVesselType(d.Type))
	fmt.Printf("Oxygenation:    %s\n", d.Oxygenation)
	if d.DiameterMinMM != nil && d.DiameterMaxMM != nil {
		fmt.Printf("Diameter:       %.1f-%.1f mm\n", *d.DiameterMinMM, *d.DiameterMaxMM)
	}
	if d.Region != nil {
		fmt.Printf("Region:         %s\n", d.Region.Name)
	}
	if len(d.Aliases) > 0 {
		fmt.Printf("Aliases:        %s\n", strings.Join(d.Aliases, ", "))
	}
	if d.Description != "" {
		fmt.Printf("Description:    %s\n", d.Description)
	}
	if d.ClinicalNotes != "" {
		fmt.Printf("Clinical Notes: %s\n", d.ClinicalNotes)
	}

	if len(d.UpstreamNeighbors) > 0 {
		fmt.Println()
		fmt.Println("Upstream:")
		for _, n := range d.UpstreamNeighbors {
			fmt.Printf("  %d  %s (%s)\n", n.ID, n.Name, ui.RenderVesselType(n.Type))
		}
	}
	if len(d.DownstreamNeighbors) > 0 {
		fmt.Println()
		fmt.Println("Downstream:")
		for _, n := range d.DownstreamNeighbors {
			fmt.Printf("  %d  %s (%s)\n", n.ID, n.Name, ui.RenderVesselType(n.Type))
		}
	}
	if len(d.Notes) > 0 {
		fmt.Println()
		fmt.Println("Notes:")
		for _, n := range d.Notes {
			if n.Title != "" {
				fmt.Printf("  %s: %s\n", n.Title, n.Markdown)
			} else {
				fmt.Printf("  %s\n", n.Markdown)
			}
		}
	}
}

func printPath(p *model.Path) {
	for i, hop := range p.Vessels {
		prefix := "  "
		if i > 0 {
			prefix = ui.RenderMuted("  -> ")
		}
		fmt.Printf("%s%s (%s)\n", prefix, hop.Name, ui.RenderVesselType(hop.Type))
	}
	fmt.Printf("\npath length: %d\n", p.Length)
}

func printRegionTree(regions []*model.RegionNode) {
	for _, r := range regions {
		printRegionNode(r, 0)
	}
}

func printRegionNode(r *model.RegionNode, depth int) {
	indent := strings.Repeat("  ", depth)
	line := fmt.Sprintf("%s%s", indent, r.Name)
	if r.Description != "" {
		line += "  " + ui.RenderMuted(r.Description)
	}
	fmt.Println(line)
	for _, c := range r.Children {
		printRegionNode(c, depth+1)
	}
}

func printStats(s *model.GraphStats) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "vessels:\t%d\n", s.TotalVessels)
	fmt.Fprintf(w, "edges:\t%d\n", s.TotalEdges)
	fmt.Fprintf(w, "arteries:\t%d\n", s.TotalArteries)
	fmt.Fprintf(w, "veins:\t%d\n", s.TotalVeins)
	fmt.Fprintf(w, "capillaries:\t%d\n", s.TotalCapillaries)
	fmt.Fprintf(w, "oxygenated:\t%d\n", s.TotalOxygenated)
	fmt.Fprintf(w, "deoxygenated:\t%d\n", s.TotalDeoxygenated)
	fmt.Fprintf(w, "mixed:\t%d\n", s.TotalMixed)
	w.Flush()
}
