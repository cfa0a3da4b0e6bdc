package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/urfave/cli/v2"
)

var (
	stakedashDataDir = defaultDataDir()
	statePath        = path.Join(stakedashDataDir, "state.json")
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "stakedash operator CLI"
	app.Usage = "Command line interface for the stakedashd daemon"
	app.Commands = append(
		app.Commands,
		&configCmd,
		&providersCmd,
		&connectCmd,
		&disconnectCmd,
		&balanceCmd,
		&poolsCmd,
		&stakeCmd,
		&historyCmd,
		&delegationsCmd,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stakedash"
	}
	return path.Join(home, ".stakedash")
}

func getState() (map[string]string, error) {
	data := map[string]string{}

	file, err := ioutil.ReadFile(statePath)
	if err != nil {
		return nil, errors.New("get config state error: try 'config init'")
	}
	json.Unmarshal(file, &data)

	return data, nil
}

func setState(data map[string]string) error {
	if _, err := os.Stat(stakedashDataDir); os.IsNotExist(err) {
		if err := os.MkdirAll(stakedashDataDir, os.ModeDir|0755); err != nil {
			return err
		}
	}

	file, err := ioutil.ReadFile(statePath)
	if err != nil {
		ioutil.WriteFile(statePath, []byte("{}"), 0644)
		file = []byte("{}")
	}

	currentData := map[string]string{}
	json.Unmarshal(file, &currentData)
	for key, value := range data {
		currentData[key] = value
	}

	content, err := json.Marshal(currentData)
	if err != nil {
		return err
	}

	return ioutil.WriteFile(statePath, content, 0644)
}

func daemonURL() (string, error) {
	state, err := getState()
	if err != nil {
		return "", err
	}
	addr, ok := state["daemon_url"]
	if !ok || addr == "" {
		return "", errors.New("daemon_url is not set: try 'config init'")
	}
	return strings.TrimSuffix(addr, "/"), nil
}

func httpGet(apiPath string) (map[string]interface{}, error) {
	base, err := daemonURL()
	if err != nil {
		return nil, err
	}

	resp, err := http.Get(base + apiPath)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeResponse(resp)
}

func httpPost(apiPath string, body interface{}) (map[string]interface{}, error) {
	base, err := daemonURL()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	resp, err := http.Post(base+apiPath, "application/json", strings.NewReader(string(payload)))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeResponse(resp)
}

func httpDelete(apiPath string) (map[string]interface{}, error) {
	base, err := daemonURL()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodDelete, base+apiPath, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeResponse(resp)
}

func decodeResponse(resp *http.Response) (map[string]interface{}, error) {
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unexpected response: %s", string(data))
	}

	if msg, ok := out["error"]; ok {
		return nil, fmt.Errorf("%v", msg)
	}
	return out, nil
}

func printRespJSON(resp interface{}) {
	content, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println(resp)
		return
	}
	fmt.Println(string(content))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[stakedash] %v\n", err)
	os.Exit(1)
}
