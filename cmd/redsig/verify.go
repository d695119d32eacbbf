package main

import (
	"fmt"

	"github.com/AUKUS561/redsig/keys"
	"github.com/AUKUS561/redsig/schemes"
)

func runVerify(args []string) error {
	if len(args) < 1 {
		return errInvalid("verify requires a scheme argument")
	}
	switch args[0] {
	case "small":
		if len(args) != 4 {
			return errInvalid("verify small requires <ver_key_file> <set_file> <sig_file>")
		}
		kf, err := readKeyFile(args[1], true)
		if err != nil {
			return err
		}
		vk, err := keys.DecodeSmallUniverseVerifyKey(kf.DER, kf.Universe)
		if err != nil {
			return err
		}
		set, err := readLines(args[2])
		if err != nil {
			return err
		}
		sigDER, err := readSignatureFile(args[3])
		if err != nil {
			return err
		}
		sig, err := schemes.DecodeSmallUniverseSignature(sigDER)
		if err != nil {
			return err
		}
		printVerdict(schemes.SmallUniverseVerify(vk, sig, set))
		return nil

	case "large":
		if len(args) != 4 {
			return errInvalid("verify large requires <ver_key_file> <set_file> <sig_file>")
		}
		kf, err := readKeyFile(args[1], false)
		if err != nil {
			return err
		}
		vk, err := keys.DecodeLargeUniverseVerifyKey(kf.DER)
		if err != nil {
			return err
		}
		set, err := readLines(args[2])
		if err != nil {
			return err
		}
		sigDER, err := readSignatureFile(args[3])
		if err != nil {
			return err
		}
		sig, err := schemes.DecodeLargeUniverseSignature(sigDER)
		if err != nil {
			return err
		}
		printVerdict(schemes.LargeUniverseVerify(vk, sig, set))
		return nil

	case "derler":
		if len(args) != 4 {
			return errInvalid("verify derler requires <ver_key_file> <set_file> <sig_file>")
		}
		kf, err := readKeyFile(args[1], false)
		if err != nil {
			return err
		}
		vk, err := keys.DecodeDerlerVerifyKey(kf.DER)
		if err != nil {
			return err
		}
		set, err := readLines(args[2])
		if err != nil {
			return err
		}
		sigDER, err := readSignatureFile(args[3])
		if err != nil {
			return err
		}
		sig, err := schemes.DecodeDerlerSignature(sigDER)
		if err != nil {
			return err
		}
		printVerdict(schemes.DerlerVerify(vk, sig, set))
		return nil

	default:
		return errInvalid("unknown verify scheme: " + args[0])
	}
}

func printVerdict(ok bool) {
	if ok {
		fmt.Println("Accept.")
	} else {
		fmt.Println("Reject.")
	}
}
