// Command devtoken mints signed JWTs for exercising the gateway
// against a stubbed backend in development. The gateway itself never
// verifies signatures, so any signing key works.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

func main() {
	subject := flag.String("sub", "dev-user", "token subject")
	roles := flag.String("roles", "CLIENT", "comma separated roles")
	realmRoles := flag.String("realm-roles", "", "comma separated realm_access roles")
	scope := flag.String("scope", "", "space separated scope claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	secret := flag.String("secret", "dev-secret", "HMAC signing secret")
	flag.Parse()

	claims := jwt.MapClaims{
		"sub": *subject,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(*ttl).Unix(),
	}
	if *roles != "" {
		claims["roles"] = strings.Split(*roles, ",")
	}
	if *realmRoles != "" {
		claims["realm_access"] = map[string]any{
			"roles": strings.Split(*realmRoles, ","),
		}
	}
	if *scope != "" {
		claims["scope"] = *scope
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(*secret))
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(signed)
}
