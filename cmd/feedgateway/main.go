package main

import (
	"flag"
	"fmt"

	"github.com/eliseodavidv/proyectocompleto/server"
	"github.com/eliseodavidv/proyectocompleto/utils"
	"github.com/eliseodavidv/proyectocompleto/utils/dotenv"
	. "github.com/eliseodavidv/proyectocompleto/utils/flag"
	Logger "github.com/eliseodavidv/proyectocompleto/utils/log"
)

var (
	addr = flag.String("addr", ":8080", "listen address")
)

func main() {
	ParseFlags()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic("fail to load env : " + err.Error())
	}

	gateway := server.NewGateway(utils.ApiBaseURL())
	router := gateway.Router()

	Logger.LogV2.Info(fmt.Sprintf("feed gateway listening on %s, backend %s", *addr, utils.ApiBaseURL()))
	if err := router.Run(*addr); err != nil {
		panic(err)
	}
}
