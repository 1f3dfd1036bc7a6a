package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtrack/pkg"
)

const jwtSecretLength = 48

// prints the env lines for a fresh deployment: admin password hash and a JWT secret
func main() {
	password := flag.String("password", "", "admin password, read from stdin when empty")
	flag.Parse()

	if *password == "" {
		fmt.Fprint(os.Stderr, "admin password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("read password: %s", err)
		}
		*password = strings.TrimSpace(line)
	}
	if *password == "" {
		log.Fatalln("password empty")
	}

	hash, err := pkg.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password: %s", err)
	}

	jwtSecret, err := pkg.GenerateRandomString(jwtSecretLength)
	if err != nil {
		log.Fatalf("generate jwt secret: %s", err)
	}

	// single quotes keep the $ signs of the bcrypt hash intact in .env files
	fmt.Printf("GYMTRACK_ADMIN_PASSWORD_HASH='%s'\n", hash)
	fmt.Printf("GYMTRACK_JWT_SECRET='%s'\n", jwtSecret)
}
