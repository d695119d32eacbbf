package main

import (
	"fmt"

	"github.com/AUKUS561/redsig/keys"
)

func runKeygen(args []string) error {
	if len(args) < 1 {
		return errInvalid("keygen requires a scheme argument")
	}
	switch args[0] {
	case "small":
		if len(args) != 2 {
			return errInvalid("keygen small requires <universe_file>")
		}
		universe, err := readLines(args[1])
		if err != nil {
			return err
		}
		pub, sec, err := keys.NewSmallUniverseKeyPair(universe)
		if err != nil {
			return err
		}
		vkDER, err := keys.EncodeSmallUniverseVerifyKey(pub)
		if err != nil {
			return err
		}
		skDER, err := keys.EncodeSmallUniverseSignKey(sec)
		if err != nil {
			return err
		}
		emitKeyPair(vkDER, skDER)
		return nil

	case "large":
		if len(args) != 1 {
			return errInvalid("keygen large takes no further arguments")
		}
		pub, sec, err := keys.NewLargeUniverseKeyPair()
		if err != nil {
			return err
		}
		vkDER, err := keys.EncodeLargeUniverseVerifyKey(pub)
		if err != nil {
			return err
		}
		skDER, err := keys.EncodeLargeUniverseSignKey(sec)
		if err != nil {
			return err
		}
		emitKeyPair(vkDER, skDER)
		return nil

	case "derler":
		if len(args) != 1 {
			return errInvalid("keygen derler takes no further arguments")
		}
		pub, sec, err := keys.NewDerlerKeyPair()
		if err != nil {
			return err
		}
		vkDER, err := keys.EncodeDerlerVerifyKey(pub)
		if err != nil {
			return err
		}
		skDER, err := keys.EncodeDerlerSignKey(sec)
		if err != nil {
			return err
		}
		emitKeyPair(vkDER, skDER)
		return nil

	default:
		return errInvalid("unknown keygen scheme: " + args[0])
	}
}

func emitKeyPair(vkDER, skDER []byte) {
	fmt.Println(b64(vkDER))
	fmt.Println("---")
	fmt.Println(b64(skDER))
}
