package main

import (
	"fmt"

	"github.com/AUKUS561/redsig/keys"
	"github.com/AUKUS561/redsig/schemes"
)

func runSign(args []string) error {
	if len(args) < 1 {
		return errInvalid("sign requires a scheme argument")
	}
	switch args[0] {
	case "small":
		if len(args) != 4 {
			return errInvalid("sign small requires <sign_key_file> <set_file> <policy>")
		}
		kf, err := readKeyFile(args[1], true)
		if err != nil {
			return err
		}
		sk, err := keys.DecodeSmallUniverseSignKey(kf.DER, kf.Universe)
		if err != nil {
			return err
		}
		set, err := readLines(args[2])
		if err != nil {
			return err
		}
		sig, err := schemes.SmallUniverseSign(sk, set, args[3])
		if err != nil {
			return err
		}
		der, err := schemes.EncodeSmallUniverseSignature(sig)
		if err != nil {
			return err
		}
		fmt.Println(b64(der))
		return nil

	case "large":
		if len(args) != 4 {
			return errInvalid("sign large requires <sign_key_file> <set_file> <policy>")
		}
		kf, err := readKeyFile(args[1], false)
		if err != nil {
			return err
		}
		sk, err := keys.DecodeLargeUniverseSignKey(kf.DER)
		if err != nil {
			return err
		}
		set, err := readLines(args[2])
		if err != nil {
			return err
		}
		sig, err := schemes.LargeUniverseSign(sk, set, args[3])
		if err != nil {
			return err
		}
		der, err := schemes.EncodeLargeUniverseSignature(sig)
		if err != nil {
			return err
		}
		fmt.Println(b64(der))
		return nil

	case "derler":
		if len(args) != 3 {
			return errInvalid("sign derler requires <sign_key_file> <set_file>")
		}
		kf, err := readKeyFile(args[1], false)
		if err != nil {
			return err
		}
		sk, err := keys.DecodeDerlerSignKey(kf.DER)
		if err != nil {
			return err
		}
		set, err := readLines(args[2])
		if err != nil {
			return err
		}
		sig, err := schemes.DerlerSign(sk, set)
		if err != nil {
			return err
		}
		der, err := schemes.EncodeDerlerSignature(sig)
		if err != nil {
			return err
		}
		fmt.Println(b64(der))
		return nil

	default:
		return errInvalid("unknown sign scheme: " + args[0])
	}
}
