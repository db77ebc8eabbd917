package main

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/ouss-AGC/oama-plateform/internal/config"
)

// hash-password produces a bcrypt hash of the admin password for the
// ADMIN_PASSWORD_HASH environment variable, so the plaintext never has to
// live in the deployment config.
func main() {
	cfg := config.Load()

	fmt.Println("=== Hachage du mot de passe administrateur ===")

	fmt.Print("Mot de passe : ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nErreur : lecture du mot de passe impossible")
		os.Exit(1)
	}
	fmt.Println()

	if len(bytePassword) < 8 {
		fmt.Println("Erreur : le mot de passe doit contenir au moins 8 caractères")
		os.Exit(1)
	}

	fmt.Print("Confirmation : ")
	byteConfirm, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nErreur : lecture de la confirmation impossible")
		os.Exit(1)
	}
	fmt.Println()

	if string(bytePassword) != string(byteConfirm) {
		fmt.Println("Erreur : les mots de passe ne correspondent pas")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword(bytePassword, cfg.BcryptCost)
	if err != nil {
		fmt.Printf("Erreur : hachage impossible : %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nAjoutez la ligne suivante à votre fichier .env :")
	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", string(hash))
}
