package main

import (
	"strconv"
	"strings"

	"github.com/target/stylist-web/internal/domain/model"
)

// listFlags holds the flags shared by the content listings.
type listFlags struct {
	category   string
	difficulty string
	search     string
	page       model.PageRequest
	query      string
}

func (cc *commandContext) parseListFlags(name string, args []string) (listFlags, error) {
	fs := cc.newFlagSet(name)
	var lf listFlags
	fs.StringVar(&lf.category, "category", "", "Filter by category")
	fs.StringVar(&lf.difficulty, "difficulty", "", "Filter by difficulty (beginner, intermediate, advanced)")
	fs.StringVar(&lf.search, "search", "", "Free-text search (tutorials only)")
	fs.IntVar(&lf.page.Page, "page", 0, "Page number")
	fs.IntVar(&lf.page.Limit, "limit", 0, "Page size")
	fs.StringVar(&lf.query, "query", "", "JMESPath expression applied to the JSON output")
	if err := fs.Parse(args); err != nil {
		return lf, err
	}
	if lf.difficulty != "" {
		if _, ok := model.ParseSkillLevel(lf.difficulty); !ok {
			writef(cc.Err, "invalid --difficulty %q\n", lf.difficulty)
			return lf, errUsage
		}
	}
	return lf, nil
}

func (lf listFlags) level() model.SkillLevel {
	level, _ := model.ParseSkillLevel(lf.difficulty)
	return level
}

// splitSub returns the subcommand and its arguments. Bare flags select the listing.
func splitSub(args []string) (string, []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "list", args
	}
	return args[0], args[1:]
}

// parseIDArgs parses a --query flag plus want positional arguments.
func (cc *commandContext) parseIDArgs(name, usage string, want int, args []string) ([]string, string, error) {
	fs := cc.newFlagSet(name)
	query := fs.String("query", "", "JMESPath expression applied to the JSON output")
	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}
	if fs.NArg() != want {
		writef(cc.Err, "usage: stylist %s %s\n", name, usage)
		return nil, "", errUsage
	}
	return fs.Args(), *query, nil
}

func runTutorials(cc *commandContext, args []string) error {
	sub, rest := splitSub(args)
	svc := cc.Client.Tutorials
	switch sub {
	case "list":
		lf, err := cc.parseListFlags("tutorials list", rest)
		if err != nil {
			return err
		}
		tutorials, err := svc.List(cc.Ctx, model.TutorialFilters{
			Category:    lf.category,
			Difficulty:  lf.level(),
			Search:      lf.search,
			PageRequest: lf.page,
		})
		if err != nil {
			return err
		}
		return printJSON(cc.Out, tutorials, lf.query)
	case "favorites":
		_, query, err := cc.parseIDArgs("tutorials favorites", "", 0, rest)
		if err != nil {
			return err
		}
		favs, err := svc.Favorites(cc.Ctx)
		if err != nil {
			return err
		}
		return printJSON(cc.Out, favs, query)
	case "progress":
		ids, _, err := cc.parseIDArgs("tutorials progress", "<id> <percent>", 2, rest)
		if err != nil {
			return err
		}
		pct, err := strconv.Atoi(ids[1])
		if err != nil {
			writef(cc.Err, "invalid percent %q\n", ids[1])
			return errUsage
		}
		if err := svc.UpdateProgress(cc.Ctx, ids[0], pct); err != nil {
			return err
		}
		writef(cc.Out, "progress saved: %d%%\n", model.ClampProgress(pct))
		return nil
	case "get", "favorite", "unfavorite":
		ids, query, err := cc.parseIDArgs("tutorials "+sub, "<id>", 1, rest)
		if err != nil {
			return err
		}
		switch sub {
		case "favorite":
			err = svc.Favorite(cc.Ctx, ids[0])
		case "unfavorite":
			err = svc.Unfavorite(cc.Ctx, ids[0])
		}
		if err != nil {
			return err
		}
		t, err := svc.Get(cc.Ctx, ids[0])
		if err != nil {
			return err
		}
		return printJSON(cc.Out, t, query)
	default:
		writef(cc.Err, "unknown tutorials command %q (list, get, progress, favorite, unfavorite, favorites)\n", sub)
		return errUsage
	}
}

func runGallery(cc *commandContext, args []string) error {
	sub, rest := splitSub(args)
	svc := cc.Client.Gallery
	switch sub {
	case "list":
		lf, err := cc.parseListFlags("gallery list", rest)
		if err != nil {
			return err
		}
		styles, err := svc.Hairstyles(cc.Ctx, model.GalleryFilters{
			Category:    lf.category,
			Difficulty:  lf.level(),
			PageRequest: lf.page,
		})
		if err != nil {
			return err
		}
		return printJSON(cc.Out, styles, lf.query)
	case "favorites":
		_, query, err := cc.parseIDArgs("gallery favorites", "", 0, rest)
		if err != nil {
			return err
		}
		favs, err := svc.Favorites(cc.Ctx)
		if err != nil {
			return err
		}
		return printJSON(cc.Out, favs, query)
	case "get", "favorite", "unfavorite":
		ids, query, err := cc.parseIDArgs("gallery "+sub, "<id>", 1, rest)
		if err != nil {
			return err
		}
		switch sub {
		case "favorite":
			err = svc.Favorite(cc.Ctx, ids[0])
		case "unfavorite":
			err = svc.Unfavorite(cc.Ctx, ids[0])
		}
		if err != nil {
			return err
		}
		h, err := svc.Hairstyle(cc.Ctx, ids[0])
		if err != nil {
			return err
		}
		return printJSON(cc.Out, h, query)
	default:
		writef(cc.Err, "unknown gallery command %q (list, get, favorite, unfavorite, favorites)\n", sub)
		return errUsage
	}
}

func runPosts(cc *commandContext, args []string) error {
	sub, rest := splitSub(args)
	svc := cc.Client.Community
	switch sub {
	case "list":
		lf, err := cc.parseListFlags("posts list", rest)
		if err != nil {
			return err
		}
		posts, err := svc.Posts(cc.Ctx, lf.page)
		if err != nil {
			return err
		}
		return printJSON(cc.Out, posts, lf.query)
	case "create":
		ids, query, err := cc.parseIDArgs("posts create", "<content>", 1, rest)
		if err != nil {
			return err
		}
		post, err := svc.CreatePost(cc.Ctx, model.PostInput{Content: ids[0]})
		if err != nil {
			return err
		}
		return printJSON(cc.Out, post, query)
	case "comment":
		ids, query, err := cc.parseIDArgs("posts comment", "<post-id> <content>", 2, rest)
		if err != nil {
			return err
		}
		c, err := svc.CreateComment(cc.Ctx, ids[0], model.CommentInput{Content: ids[1]})
		if err != nil {
			return err
		}
		return printJSON(cc.Out, c, query)
	case "comments":
		ids, query, err := cc.parseIDArgs("posts comments", "<post-id>", 1, rest)
		if err != nil {
			return err
		}
		comments, err := svc.Comments(cc.Ctx, ids[0])
		if err != nil {
			return err
		}
		return printJSON(cc.Out, comments, query)
	case "delete":
		ids, _, err := cc.parseIDArgs("posts delete", "<id>", 1, rest)
		if err != nil {
			return err
		}
		return svc.DeletePost(cc.Ctx, ids[0])
	case "get", "like", "unlike":
		ids, query, err := cc.parseIDArgs("posts "+sub, "<id>", 1, rest)
		if err != nil {
			return err
		}
		switch sub {
		case "like":
			err = svc.LikePost(cc.Ctx, ids[0])
		case "unlike":
			err = svc.UnlikePost(cc.Ctx, ids[0])
		}
		if err != nil {
			return err
		}
		post, err := svc.Post(cc.Ctx, ids[0])
		if err != nil {
			return err
		}
		return printJSON(cc.Out, post, query)
	default:
		writef(cc.Err, "unknown posts command %q (list, get, comments, create, comment, like, unlike, delete)\n", sub)
		return errUsage
	}
}
