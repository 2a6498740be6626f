package cmd

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gradinita/leave-management/internal/auth"
	"github.com/gradinita/leave-management/internal/core/datamodel/user"
	userdomain "github.com/gradinita/leave-management/internal/user"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the staff roster",
	Long:  `Seed the database with the kindergarten staff roster. Every account starts with the default password and must change it on first login.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gdb, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"bookings", "medical_leave", "closed_periods", "users"} {
				if err := gdb.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		hasher := auth.NewHasher(cfg.Security.PasswordSalt)
		defaultHash := hasher.Hash(userdomain.DefaultPassword)
		now := time.Now()

		roster := []struct {
			ID   string
			Name string
			Role user.Role
		}{
			{"admin-rusanescu", "Rusănescu Irina Petruța", user.RoleAdmin},
			{"admin-tarsitu", "Tarșițu Roxana", user.RoleAdmin},
			{"1", "Popa Ana-Maria", user.RoleEducator},
			{"2", "Brișculescu Mihaela", user.RoleEducator},
			{"3", "Monoreanu Paula", user.RoleEducator},
			{"4", "Chirilă Aurelia", user.RoleEducator},
			{"5", "Popa Gabriela", user.RoleEducator},
			{"6", "Marin Elena", user.RoleEducator},
			{"7", "Croitoru Georgiana", user.RoleEducator},
			{"8", "Ghiciu Marinela", user.RoleAuxiliary},
			{"9", "Farcaș Gabriela", user.RoleAuxiliary},
			{"10", "Burduje Elena", user.RoleAuxiliary},
			{"11", "Alecu Mihaela", user.RoleAuxiliary},
			{"12", "Cojocaru Ana-Maria", user.RoleAuxiliary},
			{"13", "Alaref Daniela", user.RoleAuxiliary},
			{"14", "Dumitrache Florentina", user.RoleAuxiliary},
			{"15", "Todor Mihaela", user.RoleAuxiliary},
		}

		seeded := 0
		for _, member := range roster {
			username := usernameFor(member.Name)

			var exists int64
			if err := gdb.Model(&user.User{}).Where("username = ?", username).Count(&exists).Error; err != nil {
				log.Fatalf("failed to check for %s: %v", username, err)
			}
			if exists > 0 {
				continue
			}

			u := user.User{
				ID:                 member.ID,
				Name:               member.Name,
				Role:               member.Role,
				Username:           username,
				PasswordHash:       defaultHash,
				MustChangePassword: true,
				MaxVacationDays:    user.DefaultVacationDays,
				LastYearReset:      now.Year(),
				Active:             true,
				CreatedAt:          now,
				UpdatedAt:          now,
			}
			if err := gdb.Create(&u).Error; err != nil {
				log.Fatalf("failed to seed %s: %v", username, err)
			}
			seeded++
			fmt.Printf("Seeded %s (%s)\n", member.Name, username)
		}

		fmt.Printf("Done, %d accounts seeded\n", seeded)
	},
}

// diacriticReplacer maps Romanian diacritics onto their ASCII base letters so
// usernames stay typeable on any keyboard.
var diacriticReplacer = strings.NewReplacer(
	"ă", "a", "â", "a", "î", "i", "ș", "s", "ş", "s", "ț", "t", "ţ", "t",
	"Ă", "a", "Â", "a", "Î", "i", "Ș", "s", "Ş", "s", "Ț", "t", "Ţ", "t",
)

// usernameFor derives a login name from the roster entry, e.g.
// "Popa Ana-Maria" -> "popa.ana-maria".
func usernameFor(name string) string {
	lowered := strings.ToLower(diacriticReplacer.Replace(name))
	return strings.Join(strings.Fields(lowered), ".")
}
