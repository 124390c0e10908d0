package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"pfeifer.dev/dbwd/cereal"
)

func engage() error {
	prompt := promptui.Select{
		Label: "Drive By Wire",
		Items: []string{"Engage", "Disengage"},
	}

	_, result, err := prompt.Run()

	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return nil
	}

	pub := cereal.NewPublisher(cereal.DBW_ENABLED, cereal.DbwEnabledCreator)
	msg, enabled := pub.NewMessage(true)
	enabled.SetEnabled(result == "Engage")
	return pub.Send(msg)
}
