package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/target/stylist-web/internal/domain/model"
)

func runWorkshops(cc *commandContext, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch sub, rest := args[0], args[1:]; sub {
	case "list":
		return runWorkshopList(cc, rest)
	case "mine":
		return runWorkshopMine(cc, rest)
	case "get", "register", "unregister":
		return runWorkshopByID(cc, sub, rest)
	default:
		writef(cc.Err, "unknown workshops command %q (list, mine, get, register, unregister)\n", sub)
		return errUsage
	}
}

func runWorkshopList(cc *commandContext, args []string) error {
	fs := cc.newFlagSet("workshops list")
	var (
		f     model.WorkshopFilters
		skill string
		dates string
	)
	fs.StringVar(&f.Category, "category", "", "Filter by category")
	fs.StringVar(&skill, "skill", "", "Filter by skill level (beginner, intermediate, advanced)")
	fs.StringVar(&dates, "dates", "", "Filter by date range (upcoming, past, all)")
	fs.StringVar(&f.Search, "search", "", "Free-text search")
	fs.IntVar(&f.Page, "page", 0, "Page number")
	fs.IntVar(&f.Limit, "limit", 0, "Page size")
	query := fs.String("query", "", "JMESPath expression applied to the JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if skill != "" {
		level, ok := model.ParseSkillLevel(skill)
		if !ok {
			writef(cc.Err, "invalid --skill %q\n", skill)
			return errUsage
		}
		f.SkillLevel = level
	}
	f.DateRange = model.DateRange(dates)

	list, err := cc.Client.Workshops.List(cc.Ctx, f)
	if err != nil {
		return err
	}
	if *query != "" {
		return printJSON(cc.Out, list, *query)
	}
	printWorkshopTable(cc, list.Workshops)
	p := list.Pagination
	if p.TotalPages > 0 {
		writef(cc.Out, "page %d of %d (%d workshops)\n", p.Page, p.TotalPages, p.Total)
	}
	return nil
}

func runWorkshopMine(cc *commandContext, args []string) error {
	fs := cc.newFlagSet("workshops mine")
	query := fs.String("query", "", "JMESPath expression applied to the JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	mine, err := cc.Client.Workshops.MyRegistrations(cc.Ctx)
	if err != nil {
		return err
	}
	if *query != "" {
		return printJSON(cc.Out, mine, *query)
	}
	printWorkshopTable(cc, mine)
	return nil
}

func runWorkshopByID(cc *commandContext, sub string, args []string) error {
	fs := cc.newFlagSet("workshops " + sub)
	query := fs.String("query", "", "JMESPath expression applied to the JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		writef(cc.Err, "usage: stylist workshops %s <id>\n", sub)
		return errUsage
	}
	id := fs.Arg(0)

	switch sub {
	case "register":
		if err := cc.Client.Workshops.Register(cc.Ctx, id); err != nil {
			return err
		}
	case "unregister":
		if err := cc.Client.Workshops.Unregister(cc.Ctx, id); err != nil {
			return err
		}
	}
	w, err := cc.Client.Workshops.Get(cc.Ctx, id)
	if err != nil {
		return err
	}
	return printJSON(cc.Out, w, *query)
}

func printWorkshopTable(cc *commandContext, workshops []model.Workshop) {
	if len(workshops) == 0 {
		writef(cc.Out, "no workshops\n")
		return
	}
	tw := tabwriter.NewWriter(cc.Out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tDATE\tSEATS\tREGISTERED")
	for _, w := range workshops {
		seats := fmt.Sprintf("%d", w.CurrentParticipants)
		if w.MaxParticipants > 0 {
			seats = fmt.Sprintf("%d/%d", w.CurrentParticipants, w.MaxParticipants)
		}
		registered := ""
		if w.Registered {
			registered = "yes"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s %s\t%s\t%s\n", w.ID, w.Title, w.Date, w.Time, seats, registered)
	}
	_ = tw.Flush()
}
