package main

import (
	"log"
	"os"
	"time"

	echoapi "github.com/cardlect/cardlect/apps/api/echo"
	"github.com/cardlect/cardlect/core"
	"github.com/cardlect/cardlect/core/identity"
	"github.com/cardlect/cardlect/core/school"
	emailsvc "github.com/cardlect/cardlect/services/email"
	logsvc "github.com/cardlect/cardlect/services/logger"
	inmemdb "github.com/cardlect/cardlect/storage/database/inmem"
	sessionstore "github.com/cardlect/cardlect/storage/session"
)

func main() {
	std := log.New(os.Stdout, "", log.LstdFlags)

	// set up services
	var logger core.Logger
	if core.Conf.RollbarToken == "" || core.Conf.Debug {
		logger = logsvc.NewStdLogger(std)
	} else {
		rl := logsvc.NewRollbarLogger(std, core.Conf)
		defer rl.Close()
		logger = rl
	}

	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	// set up the domain store
	db, err := inmemdb.Open()
	errAndDie(err)
	repos := inmemdb.NewRepositories(db)
	schoolSvc := school.NewService(repos, mailSvc)
	seedDemoTenant(repos)

	// set up the identity/session layer
	ids, err := identity.Seed()
	errAndDie(err)
	sessions := identity.NewManager(
		identity.NewSeedProvider(ids...),
		sessionstore.NewFileStore(core.Conf.SessionFile),
		logger,
	)

	// start API server
	app := echoapi.NewServer(&echoapi.Options{
		Address:   core.Conf.Server.Addr,
		Sessions:  sessions,
		SchoolSvc: schoolSvc,
		Logger:    logger,
	})
	app.Start()
}

// seedDemoTenant registers the demo school the seed identities are bound to.
// It goes through the repository directly since the tenant id is fixed.
func seedDemoTenant(repos school.Repositories) {
	if _, err := repos.School.GetSchoolByID(identity.DemoTenantID); err == nil {
		return
	}
	now := time.Now().UTC()
	_, err := repos.School.CreateSchool(school.School{
		ID:        identity.DemoTenantID,
		Name:      "Cardlect Demo Academy",
		Region:    "Central",
		Status:    school.SchoolActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	errAndDie(err)
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
