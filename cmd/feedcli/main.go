package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/eliseodavidv/proyectocompleto/api"
	"github.com/eliseodavidv/proyectocompleto/model"
	"github.com/eliseodavidv/proyectocompleto/session"
	"github.com/eliseodavidv/proyectocompleto/store"
	"github.com/eliseodavidv/proyectocompleto/utils"
	"github.com/eliseodavidv/proyectocompleto/utils/dotenv"
	. "github.com/eliseodavidv/proyectocompleto/utils/flag"
	Logger "github.com/eliseodavidv/proyectocompleto/utils/log"
)

var (
	email    = flag.String("email", "", "login email")
	password = flag.String("password", "", "login password")
	search   = flag.String("search", "", "feed search term")
	category = flag.String("category", model.FilterAll, "feed category filter")
)

func main() {
	ParseFlags()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic("fail to load env : " + err.Error())
	}

	sess, err := session.NewService(session.NewFileStore(session.DefaultTokenPath()))
	if err != nil {
		Logger.LogV2.Error(fmt.Sprintf("fail to open session store: %v", err))
		os.Exit(1)
	}
	client := api.NewClient(utils.ApiBaseURL(), sess)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	user := sess.CurrentUser()
	if len(*email) > 0 {
		user, err = client.Login(ctx, *email, *password)
		if err != nil {
			Logger.LogV2.Error(fmt.Sprintf("login failed: %v", err))
			os.Exit(1)
		}
		Logger.LogV2.Info(fmt.Sprintf("logged in as %s", user.Name))
	}
	if user == nil {
		user = &model.User{}
	}

	dashboard := store.NewDashboardStore(client, *user)
	defer dashboard.Close()

	filters := model.DefaultFilterState()
	filters.SearchTerm = *search
	filters.Category = *category
	dashboard.SetFilters(filters)

	dashboard.Refresh(ctx)
	if err := dashboard.Err(); err != nil {
		Logger.LogV2.Error(fmt.Sprintf("feed refresh failed: %v", err))
		os.Exit(1)
	}

	for _, post := range dashboard.Feed() {
		shared := ""
		if post.Shared {
			shared = " (shared)"
		}
		fmt.Printf("[%d] %-20s %s by %s%s\n", post.Id, post.Kind, post.Title, post.Author, shared)
	}
}
