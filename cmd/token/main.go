// token emite un JWT de operador firmado con JWT_SECRET para llamar a las rutas protegidas.
//
// Uso: go run ./cmd/token -sub operador@empresa -role admin -ttl 8h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/customer-registry/pkg/config"
	"github.com/jhoicas/customer-registry/pkg/jwt"
)

func main() {
	sub := flag.String("sub", "operator", "subject del token")
	role := flag.String("role", "admin", "rol del operador")
	ttl := flag.Duration("ttl", 8*time.Hour, "vigencia del token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, *sub, *role, cfg.JWT.Issuer, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
