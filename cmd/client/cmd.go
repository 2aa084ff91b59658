// Copyright 2024 the Chirp authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/chirpdev/chirp/client"
	"github.com/chirpdev/chirp/cmd/flag"
)

var (
	conf = client.NewConfig()

	Cmd = &cobra.Command{
		Use:     "client",
		Short:   "Start an interactive client",
		Long:    `Start an interactive client session against the cluster`,
		PreRunE: validate,
		RunE:    exec,
	}
)

func init() {
	flag.CoordinatorAddr(Cmd, &conf.CoordinatorAddress)
	Cmd.Flags().Int32VarP(&conf.ClientId, "id", "i", 0, "Numeric client id, used to pick the shard")
	Cmd.Flags().StringVarP(&conf.Username, "username", "u", "", "Username to log in as")
}

func validate(*cobra.Command, []string) error {
	if conf.ClientId < 1 {
		return errors.New("id must be at least 1")
	}
	if conf.Username == "" {
		return errors.New("username must be set")
	}
	return nil
}

func exec(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := client.New(ctx, conf)
	if err != nil {
		return err
	}
	defer c.Close()

	fmt.Printf("logged in as %s (server %s)\n", conf.Username, c.ServerAddress())
	return repl(ctx, c)
}

func repl(ctx context.Context, c *client.Client) error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("cmd> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		verb, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToUpper(verb) {
		case "FOLLOW":
			if err := c.Follow(ctx, arg); err != nil {
				fmt.Println(err)
			} else {
				fmt.Printf("now following %s\n", arg)
			}

		case "UNFOLLOW":
			if err := c.UnFollow(ctx, arg); err != nil {
				fmt.Println(err)
			} else {
				fmt.Printf("no longer following %s\n", arg)
			}

		case "LIST":
			allUsers, followers, err := c.List(ctx)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("all users: %s\n", strings.Join(allUsers, ", "))
			fmt.Printf("followers: %s\n", strings.Join(followers, ", "))

		case "TIMELINE":
			// Timeline mode does not return; from here the session
			// lasts until the input stream closes.
			return timeline(ctx, c, scanner)

		case "QUIT", "EXIT":
			return nil

		default:
			fmt.Println("commands: FOLLOW <user>, UNFOLLOW <user>, LIST, TIMELINE, QUIT")
		}
	}
}

func timeline(ctx context.Context, c *client.Client, scanner *bufio.Scanner) error {
	session, err := c.Timeline(ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	fmt.Println("now in timeline mode, type a message to post")

	go func() {
		for post := range session.Posts() {
			at := time.Unix(post.CreatedAt, 0).Format(time.RFC822)
			fmt.Printf("%s (%s) >> %s\n", post.Author, at, post.Body)
		}
	}()

	for scanner.Scan() {
		body := strings.TrimSpace(scanner.Text())
		if body == "" {
			continue
		}
		if err = session.Post(body); err != nil {
			return err
		}
	}
	return scanner.Err()
}
