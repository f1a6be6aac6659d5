package chainparams

import (
	"github.com/FortuneBlockTeam/fortuneblock/util/amount"
)

// SwapEntry is one payout of the height one redistribution. Amounts
// are exact satoshi values.
type SwapEntry struct {
	Address string
	Value   amount.Amount
}

// GenesisSwapTable is the fixed payout list emitted by the first
// mined block in place of a normal reward.
var GenesisSwapTable = []SwapEntry{
	{"Fd6wLo3udd79LmhuAf4crMwA1AUYdeGxNg", 24778972825467},
	{"FXgtjrqhSA9Gs8nSP1p7Y7B5s84zw9Fty7", 21552875000000},
	{"FYarZYGptFUAMru3KfHtdyFHFL11ZoAYXU", 18000000000000},
	{"Fjq8BjgvDyND3UYo4eBWtbAS4a1XQ1Z7k8", 16067847416533},
	{"FitBnYjZoJn3CfkNdwcjbTvMLmJQVSp8DS", 13451000007755},
	{"FpY83XH8KWiUk9uGtL6hVnxAqyRzHAAtrB", 12234891940000},
	{"FgvjaGbWfkojHCCgrLGZZG5tJNNx6RqLgG", 12000000000000},
	{"FkYNdxDUmRPnvxs5jJwkmn13qubzqTR78P", 11999999996474},
	{"Fb4zV87uJhptsYHDAV2uhYR7r31TdS1DW8", 11272761352930},
	{"FqLtfM4nPP3TEiwuM2AUce9cJQiG1Mhc1B", 10858900000000},
	{"FXGTEsv3XjxCsRnEPd3m4LsJsTYnFkS6Xt", 10395000650458},
	{"FiPQQdVsAwYrdF5jAR5keAxtYngyeyBwSg", 10393963531791},
	{"FWjL8ANNgYb9E6PKyY77Hk9sdtp7tfYMsZ", 10199639434742},
	{"FmXj6reJCRFMSi1euN83cZi4pLqs3FwaaS", 8994161208125},
	{"FiS69ELZbsQtPQLazS5m1Nsj9tsQFNK8pe", 8890001250000},
	{"FYR9zTrjQQx31zFukYW188MB3jkjYQDS3G", 8083890589415},
	{"FWeJqmh4kBu2xYAX6wZk5YKHRCcsmnkMu3", 7277500181572},
	{"FYBKNF2L4kRpHnqzJmJTFt1Z9Nso7Ew5zR", 6520000618177},
	{"Fk3hocyvxySUrVbpVKL878K2B7HMAVzDNM", 6507500041546},
	{"FjohRiGsre4wV7rbBbzaBHUgMAK32sW86t", 6433505690257},
	{"FWpYqSwTsiqL8975zbttvLgCJmwWXovhND", 6400000042716},
	{"FpXhMZ9oJdDkBB1AzrYSnAaasAAeMCHekR", 6390000041775},
	{"Ft5eN2guw5gcUekCiKoevCidjZJUGkFVK8", 6270000010812},
	{"FdM9WD5Y1qHvqXPCeX2196P7oLkKJ1HtG2", 6237500031706},
	{"FnBhcz28eUXfhWssJgrYTtPvXdpFfpyZqb", 6210000056873},
	{"FoLr6VA8vRjLAezmVrbrPRY1TqVKCuB7do", 6200000024128},
	{"FmUC5Xfh3pjn1CrvSUkKR9Aga7v8R5E3wB", 6188230864842},
	{"FrD7xCtdDcnjvrRkcN4Drpx58d2syo8hbS", 6100000000000},
	{"FmbkgxNCYhPd8kdnhhQXa3UhvUQpgtzCHB", 6099999999808},
	{"Frke3rkciuPwEU86En4am2X38BRB6YeT8B", 6090000003961},
	{"Fi5RQrkzteiuuHTFNjT6B83fkEEWNwf6C3", 6090000001778},
	{"FpewkikNoWRaC5FH2F3DqgvoEWKtxY557P", 6060000011117},
	{"FrJsYzohRNpcoNkfoTqoct1BqeoXUD75sS", 6060000004329},
	{"FjtBEgDohmxguLqQzcQQxwvCYSTV9NjZFU", 6050000005620},
	{"FhTArc1DpdbmQyoQFtdMySN44yM5mHrTzB", 6030000002662},
	{"FWz8jyYfuYpvTumiZgQfK6dMLrWrgSQMzS", 6001014430147},
	{"FqXxzomdwaQwWw9eMJk6F5ybjDkTHhQcQT", 6000100000000},
	{"FozU1MBn3P52DDHtE5ZW4ysDLLAYiEb5jE", 6000000000000},
	{"FdKRe1Px1PXwzq88ABbhqcKR1XptZ8fUim", 6000000000000},
	{"FnkZiWnBWja7gwvqBTd4LLjvUVZi892EZo", 6000000000000},
	{"FasxLuHtp9W3DfTmfBFEBYCbpbXFmicHS4", 6000000000000},
	{"FrBNfvK7Paxjfrz6wcPBMZrRNx9SYu4Zuk", 6000000000000},
	{"FtJ11naqxEhrV6UAD3KD722YrqeLQQipxK", 6000000000000},
	{"FWA2pYwfo1qDFDQWhj986YTVSirJ897x3i", 6000000000000},
	{"FkCGE71Yx3FAqVCzdn9nEkNCT6evi7Rf6a", 6000000000000},
	{"FW3y8tGyKyn2SVvb46VwWvtwrUVdrsRjwX", 6000000000000},
	{"FafgncinLQXFR2uSGxTBCw2Mg9wH2NUdrr", 6000000000000},
	{"FrL7WuSnxWWHFSnq6WZTXe58tqP2tMfxbG", 6000000000000},
	{"FYdWtLnADNj5B2qLruHuGt15PUyzWJh67a", 6000000000000},
	{"FXE9DH72eHnj2URFzVtiru5Mi7rDCP4XcY", 6000000000000},
	{"FiKW4Ner9bCPXKGZtvDnjP1uuAPD1x4edQ", 6000000000000},
	{"FqY5Zz7sfuohYHfB4744FDXEZr2KYkddF4", 6000000000000},
	{"FWBjUFJ1DCnZMCuabsbLvhoPwbgK4mNvWC", 6000000000000},
	{"FYyi6iWsA34KaBgatSKcXjCvLxWeoZyqwv", 6000000000000},
	{"FbyegUzKkUUQTQ7YKKmMmibW7vJWSGcUgK", 6000000000000},
	{"FWb459Rqv6kUN1FEQv3dMQimwWtVd4mB1G", 6000000000000},
	{"Fauv61uoELMJbeYY6pExj8EN67B6MdR59q", 6000000000000},
	{"Fr1KbsZBV3XHEEeSDdyuXmGgdx7MSBw44q", 6000000000000},
	{"FVKyCNMxKTFGuU9RQq3hgMA3rE4hQcPfCP", 6000000000000},
	{"FscxYJrMGbZef4DnrFCfwruDkKZviJjp8g", 6000000000000},
	{"FbiJMnn8dFxnsPJ9cBGFZq2WyYvucTq5ik", 6000000000000},
	{"FY3kVdyRpKawXRpAa7HD9fc5C9yv6cdJXs", 6000000000000},
	{"FpHANENHpgoPoyQMyL4nW7m5LJEtvyghoX", 6000000000000},
	{"FctvRw7XBTmiaznbjouKG1YMTP5rJVuL3n", 6000000000000},
	{"FoKzuGZMrt5B8TcuxgCv4usxTjwyZzSLS3", 6000000000000},
	{"FfqWogjPVnT7YfVnA6jt8Xu9ijmKGStx1x", 6000000000000},
	{"FmL6vhozWtFA7gM8PQU6sRjDjLHVaopbhb", 6000000000000},
	{"Fm7DyN2GQhoYRUi5NDYbuCpBAs7tXZiKtb", 6000000000000},
	{"FiRMnv9bwxqv4FXJECtW4krztsfpQwVSAc", 6000000000000},
	{"FZgmXe6F2XRtauX6wdikThJGfHhJJWoVQs", 6000000000000},
	{"Fho2kFAYBqWLJgbe5oZAKJYncPYQzcGeRX", 6000000000000},
	{"Fjw5eQfmohRVdrvJ1y88wGjZoMkVjPpwTS", 6000000000000},
	{"FbU2z1Vnm1SWgLps7rJUEqD6zDRH2HKikW", 6000000000000},
	{"Fo2BcQFNViPxAf1Ypto9dzhsyLkvEmzEJE", 6000000000000},
	{"FaRo87UzBZWYbCbgQfKhtfPm4M4fAQgFZE", 6000000000000},
	{"FYnpQhRrUYwrZ3jrjswdm7ZJ2qCnDT68nm", 6000000000000},
	{"FjZbzyR17cofL3GgruUrCMKTjGQCKjXpiV", 6000000000000},
	{"FrsbvsqrNaf5QRC6oW9be4vRW9uWPMKTDj", 6000000000000},
	{"FWLKEMmEqQbVubZ8HsgmaAf6mJksfsFw16", 6000000000000},
	{"FYXL4DkxX9xyurCfXukoDp82LKvpsFyzZE", 6000000000000},
	{"Fj5cKnBRXiACwDZR63T7sN9S6V19nHka6Q", 6000000000000},
	{"FkREMjzp4m2jtkf2jUBeomH4nEYergWvq2", 6000000000000},
	{"FquX9rQuSavJQ5s7fGrfr5eQvSToyzf5hZ", 6000000000000},
	{"FrcqL3yUe3gyQ2aPm5qFMdK5LwJBfHW7Dq", 6000000000000},
	{"FbBjPH7eCMCW9FQTVAWzvX7SmtVtGW8VFf", 6000000000000},
	{"FdhQ8NVK1m5N2Te7wx15cTpnfn4MQjJV9n", 6000000000000},
	{"FnSsoefWW3T563WmzfnXsJUo571ksP7vid", 6000000000000},
	{"FekVU8chY6CJh1FprQFr6UPdhXb7NormyE", 6000000000000},
	{"FdqBJigVbUid5vbrpwips6EpFEbqLwmNrK", 6000000000000},
	{"FoDg1Bz3Je8kU5oXt5FVUSA5KazrQnN9JF", 6000000000000},
	{"FVYDCJssCmmA7txWjYxE4iWFf3eCQJDUem", 6000000000000},
	{"FaGQ18yGNgk6kparPMiq4327UdSZFXMU34", 6000000000000},
	{"FX7AxqkDwQUcL6KzuhXRkoya6ptHAsfV3D", 6000000000000},
	{"FqmCFca4nA9wBTSnL8637LUZqa8SaTPXQQ", 5961290274391},
	{"Fdhc2P5pncxVGKsiFEqm1Gv1TGuQdtQvL7", 5660392475045},
	{"FfR8ASQW3oQ2Eh3K6wU48MX64cKdxsx3Kr", 5551191000000},
	{"FrCsh8N8tKtaPxEuCZan5ZRaAiuSEinf7R", 5381976420778},
	{"Ff28tZWhf59thjU2uYfzqQtTazRTTPV2ng", 5230483420315},
	{"FktXpD9GPsikSsaT4fSui1dpaBrhRHj4Jo", 5182500380191},
	{"Fdox5geGyuPBVSKjzuLBNABQw7GETZQG5j", 5156516879299},
	{"FrWVocHBVrnDvxEXVij9tdPtLwCCV79Lmg", 5142501836812},
	{"Fp9NPL7mQDGAoQdPJJ1Kwh4Rh7tSphPWoG", 5106012951447},
	{"FcgEBFqHTJa4cf3xR2xmhKMFKcGTPXbX4K", 4990339308341},
	{"FqA9pxS4srGaHVLQ3bTxKeBbXtfwGu2kxr", 4935185713914},
	{"FZesPbQd9tynvdva2eEbLj96n4fZd8cair", 4853932993206},
	{"FWnMFu3BSpDqXbs4gcVCQjL4yUTi9q4X49", 4843890216178},
	{"FqwtvTrfbxsFmVFqu4BvMoDzZSqaWVL8Po", 4782500893982},
	{"FWCH3CY7TsRMxTmdXrpRHN2yk1k686pfSw", 4777600660432},
	{"FopMmdNzyjhoMjj1Bs2hgua2faMdfV5oWn", 4772600640620},
	{"FZKDZvpqeeinjzYHiS9swQLY6hxswKakmJ", 4720100574880},
	{"FiMF2uuybouzJQfHZ9B9smuoekkvp7qLti", 4477501062883},
	{"FXKLy4z11xDE6AUs8JejGKvirKdtRKTAGc", 4363778938679},
	{"FobYL7debJLYmAcb6584tpakqEMCLtkEbN", 4222385561176},
	{"Fgte6rqFcSgW5yLfq21M3Fo12bBwhxjb7c", 4212336156441},
	{"FqSWcCbT7kqbdUwGQK8pVg9QZiH6Viy8CX", 4195939527617},
	{"FmVJUF7Bwd1uDASTSdzK9eVpo9PsacTxC8", 4068526114320},
	{"Fp8hFmUQ6AGfFa2T5UGQc19j2TPCwXoUwW", 4025940018834},
	{"FjMDjw1XUoEdtxE68pdryte6tHJ7vWjuYX", 3999899999774},
	{"FjvFQ9vkaVzs4qLrHsTQauvW9wKnZ41r3G", 3817157036018},
	{"FiSVzUYP1HiECUiuwUoxpUAEYKufVsJgSx", 3738283480121},
	{"FfPJ8vDSCyHujK3goE5Ur2au4kWccYQb2X", 3576889180740},
	{"FXoXrJMhVgtahr6ccezLeBfZjPPBcwdbB9", 3532059095211},
	{"FVTSN4BeidsqFSzTBgg3bi6uHV8wv7BazW", 3354081014589},
	{"FgTJqaRiwEd7bUg8wW2XYJV2DYJYEsZbnp", 3291262384777},
	{"FpKjMvf1XvChgMhubapVZ9Dabjqyce8TZg", 3108039890639},
	{"FncFVc7eeXdoAgvXUKcsKgv7RZcam6ZmJF", 2839794310128},
	{"FdJ9i8RxfTR2nt6vHXpWHGqKyUmVcW7chW", 2787500835640},
	{"FZ3hBRC1zReUpRPCVHRKQzmSUxGZ5nhff7", 2672500304957},
	{"Fsp2mjND7wVSErfTPaybNCrfSE3rCipvzn", 2643483718026},
	{"Fr3mYCtQ3eaMqj2Yp26UFJn3tpTK25fmFK", 2637057707010},
	{"FnWb2SYgGk7xcABARqAiwVAi1j8GmKTovt", 2630000346999},
	{"Fh7ijwHn2M2L97thuHihTHMeB4qEkGFfWp", 2611191054738},
	{"Fai92ck9smGLv6vy5ar6z8MqCMT4LWyg5M", 2462500352437},
	{"FXmW4nhEyfArb9bQTFGEjyPtGf8s732R2U", 2406263658634},
	{"FbRpsXzWZL8A9agjDmrib1wntuk26bPy7F", 2379212663921},
	{"FbfnEmBbJZ3yvr8pdcLp8qnnXZWvY47jkZ", 2338990440000},
	{"Fqd2CWTb3zqJZigRak4v6UPy2dEdaHqHC6", 2333265772717},
	{"FjU9o3GqTg9G72bdXXejKmLhqxtZ3A5rQ7", 2315320975081},
	{"FVxiZqRiPThvi3aaAL3iENFwTrqMHpa7XB", 2279521803550},
	{"Fo5Dsq12YpZao4vkNWQTsFE2PPK6R8ad7z", 2218892869838},
	{"FVTpAx7CLu6kXRQMWTNkYRF6dM6KqmRg4B", 2117500266496},
	{"FtMckLFJVgL6hNVU7VVrvgN5DbUG6uRnwU", 2105000172451},
	{"FgsxRRGhfEZCzDM8D3GEfQa8roJxKoR2NW", 2085596424344},
	{"FfU34Sd2a5EFPB5zqxokMA13qYbS6Z9FzN", 2077500469544},
	{"FXuhc2KUCtJquoNFC8G6VG2RkAtNRnqzG4", 2075000242707},
	{"FkBSqakjiC9Vwf9WtBqSt6NJUjsQpVaoys", 2072500693464},
	{"FWSooFEgCoj5ufhWfxHApD5vmH6JgSsb8m", 2006957088016},
	{"FX4suk6zXqNynUf3Ni9dsAx3APrCGBapL4", 1985000328733},
	{"FnSHK5c6jVZoUGbHVhStSbmPYwRTdQVwpv", 1974964247879},
	{"FZ3iHjxHvawcCp2BucLx8mawoHBj8MYFiN", 1967161822793},
	{"FbqrqWyYnyqV7o63TjL116w68NRYU3dEDV", 1940000443012},
	{"FoetNVE8Pn2vCN2YKXQt1k1PamAqDtVcKf", 1910001071135},
	{"FYNcA98U59BojRjhBRRW8DsSohQLQ1kfv5", 1846907140527},
	{"FeNRZkPUbjEBHjR6Ru7wyWS1uVY2asmzUW", 1832500240943},
	{"FZJjpfFoFfeJzrs33xL9LkWrDydvPSVfHW", 1815000369496},
	{"FcArKZZoUC5K9QHDZkqy8naYxFonMXWLcT", 1751985738315},
	{"FrhPTyqU49n2gitKzfn6UnoHd46hmgEU6r", 1741541528924},
	{"FdaiowjcsXdQNEejFS1QmzY39kgJBCpGwe", 1735053155217},
	{"FomX6RmLp2KvbcSX6VzRCqaE1oyyyDjtQW", 1717764257269},
	{"ForE8usstHWnX4S6qHrBj5FMcZcJUaC2my", 1711492759376},
	{"Fjajuq6Z5dHKdctfcmfHU8Jsnpfsr7knLp", 1705424471506},
	{"Fhm5XwCbtmfDWiBm7tKsjERVtPX2nWYzMB", 1686755739303},
	{"FsfTxAjYWdirr69vMv6k4TYof58sPkt4W3", 1681787607396},
	{"Fhjjyx8CGPRt76SVhKrjsZfDibi2AtoKVm", 1675970368346},
	{"Fdg7ZZK8NWLEJvK14NsU2AKeoGoZFtaWKu", 1639762361087},
	{"Fkx99aQkBC8xbJpaGK11spq76Jd7DUfe59", 1614345097112},
	{"FdAvyacqHGMvi3XwrdcT89qTXQVNUJMbyk", 1577500209418},
	{"FqT7MKJQnMMaZvQy9AJwXXo8qQiCn3wiSD", 1555709664127},
	{"FtNML2JEpqabF2KPRXjjKLJx1ce4ZAVRS9", 1514063021628},
	{"FfqAPhXKnHCQBq1inGowGEquRyMpDTvtHq", 1511182558503},
	{"FbKkrtFRQxb6ff4kLFNo3NKt4R6KQmAGaC", 1444489037055},
	{"FtRg1MAh21hPk2kYM85Ux9WfpQ5p5NTKLm", 1420601848491},
	{"Fmwbi2HaUb9nf4pQK5F52DQxaT95do3h2N", 1400000209254},
	{"FhcqVWyns2B3Xf6Z56a2DcmgvvQJBKMj6u", 1399630432565},
	{"FsSs6s8kGwcsdLPKkyYBVd8G9T9REq1Roj", 1389056668780},
	{"FdvQY3WHs2f7jwLPr6pGGuhF8riWaGsTTb", 1370706078707},
	{"FhEm14ndt2Xp8eWNg5nwk2XiqaAJJrai84", 1361409985579},
	{"FabxLmAFW4w6PuqweB8MQovT34eBWPmgJH", 1346141395283},
	{"FhRSnvYsknti7WiV4EXyrDdF6Yi5sHPgB7", 1345627940000},
	{"Fb8DeEVa5vvk87zHisN6qroaCiykrBUkcJ", 1275000094841},
	{"FgShcsPqRk4sdg4FTCxSEzqUtJUyH2MEz8", 1269488452395},
	{"FXxuufuQvxvXre6oVFWmmw3jXektwAf88R", 1214863737990},
	{"FbLJRaXT7vyfAaNVt7FGJeNVxTvzWL85Q8", 1207500142267},
	{"FfdCgjLmD5i4hPbXSpkRJ4F6sUrzGf3GMf", 1165341727706},
	{"FZEG5N62urV8feZBirayCtwsESSs8JGwze", 1129363333750},
	{"FfDjyHaupciyxpCh25nj7EjEzFeS7aFc4T", 1082406261216},
	{"FhhKLKC3uRD4D7uLQD8TLUZGFHs8bTfyij", 1075516675137},
	{"Fhrvpgi8nxkxU2Lkkc72LKHkFpmxN4sWQa", 1070000237759},
	{"Fo9v1fcYAmr4Dake8MtRjyhbWvJ8n6YK8w", 1055000111221},
	{"FjzzrCH7V6Sif5VWESS5F86KECKcL6mGNL", 1050000000000},
	{"Fg33ZLT2hMKs3ftZVzmDFtacbuEN1iX1cZ", 1041945759427},
	{"FoxxYEogZao3fc7UcQxhCShXFkx2nEU2qq", 1033953450292},
	{"FatLbgopBcG1yWFNoCenxijCnkAXv88Nik", 1001316000000},
	{"FcoF933xPyCRSNq3v6xcPJZ7exNjRqevvb", 1000747876830},
	{"FXZFZyffsRzA3VreSfn7kw5FUBPyuAS8Ub", 999799999774},
	{"Fi5jQJkkEkkuTTZXgfFPAhn7Jnv4iYrPuD", 923559196041},
	{"FWnVrgpRoSYBfcSKB1ZbETtRKqmUYYZCy3", 917958753262},
	{"FgxVKsh8WaXLVH7XRzfbLhgcRkkCksttTL", 909823568275},
	{"FpGUP27bpDJHBSVPcvPUmd2rz9M1Pbe2L7", 909500000000},
	{"FaJCixzqZVAHUGN34RZd93NqPeoJnzjWVJ", 907575076318},
	{"Fgm7tCoH6QvNVt7yBwQ3sKN1HS9YaBnFXt", 900000187096},
	{"Fr2Gd4QNFh3sCBSR5xVZgvHuHAVtkBMqdB", 892855383484},
	{"FXSUAtK4Za4utdzdtcUQHwQquDeZRzj3g2", 891961223608},
	{"FbGGzJ3aPTM19mFveFAVC55a6dnHkdVwDs", 890575069075},
	{"FcXs7eKQYmoQiCqsuo4FdMcuVyAxjMDFQX", 889568636877},
	{"FZztStpJE1fBKmb6sfN8rSZP2M7G6uatbN", 883746638072},
	{"Fi9BvgWKYhWvLD55eL1ik1frcs1AjapTAD", 840000254264},
	{"Ffe6guCUku84Gp9MQAPw5CBPUAk854UcHX", 800755177115},
	{"FpjatcC6b4XDZ8QUGeSmq7mU8oLbGyBmR6", 798986570634},
	{"Fnq6umWK4PtLsK5VciJK73F5xFXfKDvz8e", 782450855662},
	{"FYCbXXXcU1WW2Ya8W5Gj85SeUdRKPjbWyB", 762731227389},
	{"FoRVucLfeiEiCFop3D27zfDxTRqTFZwZyw", 753699153346},
	{"FZHBNpJQttMDTDCRtSuHw3cQ6oZ3scqdUV", 742881531650},
	{"FpoVRHmDDFX9NG9M7MH3JhnMfRCfaTnYHh", 740264355117},
	{"FZAmsJ2ZKYcDHWNrpfXQ3seEy9i6yMLDs3", 732309273865},
	{"FZStgLrJpD9hKBy1E4iTeDpFAjaMenaWdz", 728311348133},
	{"Fkvvj5A1PvfofPdHwEBx9VP3ntuAd8NhLU", 725247459133},
	{"FqMzAaKXbKueznmC7gwq6nwsEMASMtjZFW", 724964190586},
	{"FYTvDL1MQnYvWx8beFLeAZdAeur8J6aoJP", 716946296546},
	{"FrRwYaRrGCXPTB6PEyyFh8kkLGwdNUEMHA", 714546509529},
	{"FqFzYDCcnQmzR3QofMySBzCJTTkh2xCnXp", 713813638693},
	{"FsbSk6uCBrzMCmSgYTpRA3MYG7BKUDkSB9", 712307027530},
	{"FmCf3YULvd3PM5fAhdrSAH6Usg2YtjhsJD", 702404722890},
	{"FeiAKdbJnQwWzWnEhwjXS5e9sYoyPY42dB", 695116648764},
	{"FbCWViMu6fFnZgXgVoDQDmheJbVn2e7q3j", 690885618061},
	{"FekyAttsrvHXA68vrF7NJ9eUmDnGFEnMK5", 685625762672},
	{"FqLn76MXDF6x5DkggVMMkhtH1oc1c45RFH", 676712707884},
	{"FW3sk4ZxLZhbPzSAERGAnXv3aedoaZ2E1w", 672134894642},
	{"FrvdJN1CCpnqP57u8uRiMUGgSquvRUzxNp", 659450036356},
	{"FY6qLoDsmqT1oEZ1V139LLreDLpGYxQc2n", 659085540839},
	{"FffzRWHbmQYkBhRWW1BR8qWjD5nLmpwfED", 648756856761},
	{"FnPUAoHgLxQgZDb6tMwPcctgh7uBT5Xh61", 643298117123},
	{"Fmi47LRh2mhPhY3sANuzAk8DRbgSYgazgr", 624064218932},
	{"Fk3QGWsosZypNDfe7sKZkocgkSCpSFQMgT", 603964685572},
	{"FVuroeAvpxU4qMgxSwxZPgMXiqe9cqoqzc", 602646420485},
	{"FZQgA4Ng7NvTGSvQbHTEV8KzYAPc3pnc4r", 596153175896},
	{"FiMFmYqJpkxNq8J9qgCoag6J6tJfXKvkWU", 592367261942},
	{"FaBnRqsBN2f3pRZ1nZmF9hEmqSdAp22QV6", 587510871439},
	{"FY6UCmxUeock69iFq76R6oCu9TXrM5TX6L", 586126125488},
	{"FWkhbN3nBTDH4XmMxN87Z9FjPucQr5gHJU", 581019260660},
	{"FYcEkNASAdArg7uuP2qqDrRRcrwAUfuU3R", 577249619523},
	{"Fbk93DmuPLqvjrq7iD8KCVcwZksJ5kH7na", 576431639393},
	{"FiqpT9nAhakitHBrW9J7F9Q6BnX2tPMsYr", 576371995792},
	{"Fmwc2Qwt48Jfc2T2rHDSUB3TMnDaJXVN8n", 560748460312},
	{"Fm8CZXpbQAw4Y5R1mihELkBGc24fGpJkVo", 559783789227},
	{"FXkpsfFcPxS9cb8LA5Mx5zxfgmC7AKxHUN", 524434603052},
	{"FrhJeYzQn1HEDTF87urpwaaZdRG7czwwU4", 523280612842},
	{"FriWX5iZ7VYv5Esg5DNGWf9Yic41M5jBUp", 519947697755},
	{"Fav2wSGbrXtP2mZM7PzDG58vgtBh2GPacS", 515485172394},
	{"Fg7324uxpaYUPPiPeiGJgyQ67LxQ7BD75g", 504859020689},
	{"FkRcpzsHZpTFpbDnP98TGm4ZXK9dkVq1zB", 499218785130},
	{"Fdui7sLdbmzz8YvwMfaQxmYEVU2mSBoQwo", 489338458586},
	{"FYEmEgXV27pYCWKKY5GomGbZajM7xc1o8G", 481069334428},
	{"FkjBS7pfuZ21ZteCs3FoykhRnQVWcs3NVc", 479875240952},
	{"FVqTjBq7b9Lc8uZZQWUQuHd6cTh8hCGXGT", 477213799617},
	{"Fk72tnNBM8kVRLrQzeERFUyCCcELuve77R", 476122219453},
	{"FWTdzhRoGj4XKf3aLMuwqtmZFZeYPWTCpZ", 465760822046},
	{"FYqLwDLHSvCxSUoy5NuQov8ztyNkyoMA9M", 455614550139},
	{"Fh6BUEwSpVJu5Gs8fnnFEi7XfMVQY6YhqM", 452217207042},
	{"FWUBQX3R2SeuvtYGC4oB5AaBRtAFEmmLhx", 449554145111},
	{"Fc9tr8to3TjL6JMfSWf7EAU7ui2dBJAxjq", 440000174180},
	{"Fdj9obrFGT8odwbEh5xKganqrRnPVM6owX", 427234311533},
	{"FXbJzJg987sHXbm9S5vU2mzxTnjfXbtLdY", 423990965183},
	{"FrsGwktwtzLske8xH5utWrZkmY8YnuzSU5", 414733736732},
	{"FcDWdBZTtpq68mzr36Es9CoJNZW9DePRu1", 411614150865},
	{"FoeeZemxvr6vC4cAsaJQ3H7kp2vJe5z1j7", 407154434291},
	{"FXcSKwB5PNUYkA6CPbHJKQJZwhvJidwW4u", 406640049188},
	{"FeB3g2ynV5FtWxX4P9JSFk4nTCAySCBFNp", 405000013103},
	{"FiukqMLQMjveX2cfHcqux5Ee5kx737QWDi", 395505894823},
	{"Fpc6L92PmScanN4kudwd9rsLX7vTyg6ZdQ", 395314544055},
	{"Fc7Z9NZuoFX7oR2THqa8Zq8DK99GYnkXUq", 383671679846},
	{"FnwaRC6jxMqcJ4Ue9UML1Vudz2cRKvcKKR", 383180385156},
	{"FVLrM1JFrvdffpbmoMt9DToWu88pLdYWK5", 375609278054},
	{"FmfzAvwPqYqiyApQRfcptbf9VGK1TQtEET", 375000013826},
	{"Fj76gJgX5yeEsK9uRZFFCz4wGBKzjNPtPY", 373805576271},
	{"FfaLvzZSDhtSUDssm8NKgDYAGrQ8m3CMvF", 366590802531},
	{"FeisZg5Rb2WXXcxMPGLxycWVUvVVL4SLSg", 365291758766},
	{"Fh4b3sh9k7ozk9eWjPbr9jzMuoK78Ldvnz", 359314568056},
	{"FgrghaHpBGAsPfBXypRQwqEbTXT9PcPzPg", 359224597448},
	{"FoZ5WoVrtxPKcfkisAzHDzCuqTP3mRVi2d", 350000035642},
	{"FX8HhvXSiJsRqaUFN3bHhwRAhG6MXXBzqW", 341159232144},
	{"Fr4VgSAoh1MudMCJPDyMvdc5WB3rXJcKzm", 335018090739},
	{"FkM429yAkwu6b8ySgCnigssbWQfdFFrMMR", 334878877821},
	{"FifP9d8FU4uuy7TBjxBg2P6vxscRZViGRz", 334328002682},
	{"Fpv4fVhn7hYTUp5YDax9kF5GvsYGRKombY", 330000034176},
	{"FaDQdYGq2t8ofUAQsWXEcGxMwaBujLpjaB", 320048843483},
	{"Ffc1tz1n7pkENsThBDpsrAUDzoeqzmczmh", 318430083527},
	{"FhzbTDJJGqttRhiTxuSb3U4JgBDHM3fg6M", 313122051302},
	{"FhAi8T2xWpqHJP8e7oD9eXU2uhWxgYsLw6", 308702438540},
	{"FpbTDinHaGmQwEouRMUNQGG9sRzowfVpfj", 307764053300},
	{"FgjsKdMkyvAVYqsQFkSH2qPFvQRj4mgMW3", 306973293986},
	{"FjDa14hJJ4PFZtrQkw3eCPdaFJNazK4GZz", 306931965338},
	{"FmjDQUCVFKFLjAjLE7VxgA5fbwqQm7R4pA", 300376882771},
	{"FrXm6Egrjt8GKsyKa5b9VWQR5ogQDTjy3j", 299522000000},
	{"FfZcyRugJHL8H2MSMrU3YULifWg73hxQZs", 297539856728},
	{"FaQEKmtmGW92kcfRA26taC1fv8sw1KuTpt", 295525371820},
	{"FYtF6QSiZCfgKAx4viYDoysNNDamLZm5y4", 295000026178},
	{"FZWxXK1uwCfzXFvdTwJvkWCp5ui2HbXtGD", 291282656513},
	{"Fs9vQx4WmfNrR8b175WgXJMhBotiDc4BbH", 289904935239},
	{"FiRark64FCjKaRge7wULjN2cZzesHcTP13", 277609431660},
	{"FVYmMpHcQVG8ZDpynrFRnH7Rz6LCELx5YB", 275900790673},
	{"FaBJBhxq5LSFU3vcDpn9uD7bcU9EHKBbPR", 275639648401},
	{"FejMtPU2F64Kr57yogRpWD3L4BMVvyR5Aw", 270100012595},
	{"FZcrLsth1nRXzjFAJCHHmvFyxSPUvtq1df", 263170705081},
	{"FceXAiDZtJX5yYqqsySZXQUd1H1UzFe4ua", 257331645398},
	{"Fh6dfYBTmV96v7SHLKbZwJwdZ5Tr1N4a2b", 254681761015},
	{"FmqDi3TiRHoLSdCx3rWeibxNLWPUcsmeG2", 247787088487},
	{"Fi4zGi2fGWwhwXgHb7RisxhQYQAxcMFdKh", 247259493025},
	{"Fn5azVvWrymCzKeNvQ7zjJYVYW1NbTVqgu", 245000109602},
	{"FiseBkmeKSE1NZ5JyK1j1RoPVU1AyXVYjn", 242968206338},
	{"FgtMKXDGv7Kt4sQVJwkozdV8K1XfhWRcDa", 240497613206},
	{"FpzMqf1deMP9sFHPhMey7FjAobXkNvuWiK", 239125618498},
	{"FcVx55RtAq2CiSkcBv8rBVNBReF1hVBbHQ", 235560756238},
	{"FaLmxmgcu4mmfSoHCAmNT1y5P9RvD6bdRG", 234741639042},
	{"FsZyqsdXP6SRVJrLYWLd4NYBhYheUbERMe", 232744150904},
	{"Fc2erDbRydQgY124HawPmHNGpp2GynV3w8", 232500035053},
	{"FaBurUrJbJTqffynGCBpN6Xd3MeK9qmm24", 227500037777},
	{"Fjz5xFrNSsmo33HhN7N3Us6shgYFa4mUty", 222500036970},
	{"FZm6uoLKA3hrvDXWsv58EnsxnyGghAjTZ9", 222500012730},
	{"Fn1byNNRVK4y95qhRP1Ye3QnbP61spyt15", 220000044296},
	{"FYB7NJcEpoMY8NYYNx2mvtTcB1Pf1gu7mS", 217500020645},
	{"FhLRUozwooEuZwwdqBY4dcxuvK41dm857T", 211264609795},
	{"FsjptPXEVNLMp37qdAa7pWaBwsgXxDzYqS", 210884312802},
	{"FjUwkrvGtFxoHS9HNcK3Qk8bSiK26hy8Ug", 210054642099},
	{"FjoZUSaoaSL8U9pmHrSL1x2D27my84qENi", 209532909719},
	{"FjmD5F4WEhSrxBNwXteAebhr4Mrw7X8zeW", 206836726765},
	{"FXQX8EL9v4S8D5wxTX2U4TokUKdzncgeZi", 205762235620},
	{"FgDedviSAHqHf9TQBe1KD5MUupMhyAPwL9", 200458474918},
	{"FYG7MKgEHz2vaKLWSFtQKxgPPAe2FbdWro", 197578075456},
	{"FXNNC5fjDawrK8ANSCjcpEczWZWPB5uEos", 195702733640},
	{"Fp1dnCe3v4BPpB8JZpRL3pFePPK5hHsCP5", 192500067211},
	{"FaJU6bqj9T4pgb9fEnTxF3H9ow9SVQLVV4", 190000016142},
	{"FdPJdJcEXg9vFuZ2MXnLpDdBaUDRkLSGPr", 189913282366},
	{"FgCdAhVHUa7CB9csHoCThJZd64mMg6oUuV", 189295520967},
	{"FgBh5nRGKYVUBzVe5L35eKvZj7arf24Chu", 185090481847},
	{"Fobu1BsxzxE2SJM6np2ozi2yF5CN8EXH6o", 181403737010},
	{"FgqsyvQnPDvK2LnAivJSyfJ3Am7Yo7zMMB", 179849791038},
	{"FpDCtrF6zvoNqG4caMbhvmenihS3qRKgvS", 179401931643},
	{"FjFwudB1m9teTMF5LGtywWpcU3hbsBABma", 177749435443},
	{"Fn5keYFdoX8LkvmLHpteSJ5sUiPRMAkShg", 175001047396},
	{"FetDA6EWDrwz1uS8JXtXT9hTXPzuYvnoaD", 173881260523},
	{"FbNQRSQ3ewxHp5EoDMtFp832JMptKnfmt6", 171991697481},
	{"Fb1gcdfQaYmDpA2rHob4JADC4run68b39Y", 171647797457},
	{"FkkyCAaqLjpmfN2RgNP6rLzeQqFe7VDWxr", 170000024186},
	{"FsPbVXNxUh7zv8Min1kuSg7VPBf4FRPKZW", 162041237786},
	{"FZCGcnFyj2eUxxucjJwBP5faoWvF5Uihyt", 160559451190},
	{"FngUJy7s3PtVWrTmkkFr769CyTaPbYyLhe", 156110065619},
	{"Fkxac1EMvYoLxsu1S3SocDu8gAnD3L1rJP", 151815324998},
	{"Fb5JTkg2HXgLjSqbi7SWRbcPryrrTg3t9o", 150000015836},
	{"FZ52Zh984rZaTS84FrPt3FW9Z3tQGyM4r8", 150000006773},
	{"FmscKq7qg6GHLN3ra8y5q36osW2qoSDuQo", 149968580000},
	{"Fjqjw4CCx5QnmBsfmWgmX931rpPFVdWaAb", 148161815587},
	{"Fm1xQAwVSGrVk29QLy42sywk9JCutPQJz2", 146424657313},
	{"FnWv25S2MsP3YUuwtZg8Bfe16C9XfiAQAT", 146371676532},
	{"FkLuVZabu5JLfatKuEsZGD4DYWK3WWgiTU", 145526461775},
	{"FperfdJRM2MKAMoNXiSfTMrdmCo6brNrb6", 145466140692},
	{"FnSnUXjoaNJjzqbSWkvkxLCrfD7WUCFzsP", 144547060000},
	{"FdgUcSgBhYdRNN2tiGwRG3JrPM4CG3RqwY", 140395078808},
	{"FWJ7mYjPjeR7qkrjCf2j4MpvMcwD8FpV6E", 139843875271},
	{"FsTZJDyk14pKkYurNhXedkGw6ob21pMNwF", 139647060000},
	{"Fe1exsh8GNzyunGaVmUXmaoXy2A8Xsfq5S", 138510593029},
	{"FjW2era1qNf4sXbcCTNX31g2NpZipLZRcT", 138283628425},
	{"FhvTsZZPV83a2XqpyXduECe8fmuuD3JZdM", 134778830773},
	{"FgUJ5d8Fqxj2wYnkL1RP8sBC1vtTGhLqJc", 132115788599},
	{"FnsEsixJz5Gfw8NMvnnfRMhKfvSawVa5be", 131818423313},
	{"FXufwsVKha5wLPZJT4AtQX8Lnh9cZeVUKu", 130000035370},
	{"Fs363vepGhpGSQqcvgGD1FJsTPnXqXFj8n", 126585350726},
	{"FrrZwcUkLHCgBq4JM6SXjX23Xs55ku7iLy", 124767795586},
	{"FdQvYF4npWhJgDtdYgLvwN6js5cWAr4BrG", 122500007050},
	{"FbW1f813QRLyMdaWSkLwj2hVWtVVikM4Xt", 122100223222},
	{"FiSGN63Mr5WRZ55aTtztZGpL4riTEwHFre", 121660201223},
	{"Fpa9spGQqtsLFcQm3LLjvxGYqnHBNDAKhy", 120939717759},
	{"FZdEFBqqEhK85CwqJb6aqChmJWNEExuM52", 120116202941},
	{"Fpw7W7zqfVpxQzY9RauFvtoPTsA2LW4TAr", 119121775894},
	{"FfdXg6unXo6DfmtFa9VyQwLW3LZWh7tzYn", 118339277710},
	{"Fb3hdw8ycx2q3i45XgxEGszKrkukZyWwjC", 118046771979},
	{"FWZx2eJQLDakB5Z9nFLSDmg9uFjMBQbpP2", 113893257403},
	{"FgJVRBg1waqo77itFgm4JGtPNwVWFredsC", 112754246686},
	{"FpFwF3Stx7YHUWzFDVayRxoqBTxUrU8Ty6", 112543796076},
	{"FiJ9uL5eXab6jXagYJrRCaH6aVJkVcoJPw", 111882088131},
	{"FWZYd3dAqnh1yxY6TpfA7KoDX5odR6toz1", 111734803737},
	{"FindtoCwcFdBx8pgKFQJNwz83FfwEcsGXQ", 107280588539},
	{"Fq1od1ceY6NPEhqJ3GXdrpPsPwr2WxoLgD", 105091417379},
	{"FjKvkFrM2sRMJxFyA72MeLFQg27cCsMzhw", 105000000000},
	{"FhZgxNRqPBC3Q3QYN2iX49KSK5dpRD3BSd", 104917189871},
	{"FmVqFsnHjAZiccV29UK4gCGCFYVceBG42R", 104601727536},
	{"FgYd2VZPoiHrTULz2M8Q3q7mzuCvattEsE", 104170533816},
	{"FhVKqJepsN3L12EnkYuB2bLbTjbsEpEVAJ", 102541002991},
	{"FWGs93avtFfUdw3mTcKZy3HveKyKk68CNu", 101021856113},
	{"FW2qFhZMC2k5uC96hd4wMwBhvtAjfGUQFS", 100907168630},
	{"FrCn7X9Yhr5RmvjDSBm8LG7cNrgG6gQ7Kh", 100854072427},
	{"FXeFragwaWg4LsEjswRhixe7ZL323unZ4g", 100304997467},
	{"FhKjMkV8abGhJbMwisFRYvELfh5rBT7xz1", 100000000000},
	{"FdiDpS4DY3JahvPZABMgKkyXpTmkmSYjyF", 98809932973},
	{"FbhJ2MGcdc9i7y8MhBZXpcJM5PQDDJAW8j", 97616445413},
	{"FjRjCHBcy6QP7MR83Wfo5h65A9q7Pwd4q6", 95344383400},
	{"Fmnu4g9oXS8eH7ibhnQLdVU5ZYPk8iHtDQ", 94881621857},
	{"FhnTZ8j1bCMaf4qfzu1VQpbVKrmuvRb6PA", 94314419238},
	{"Fhsc21vgCESHuX3GRbAAMienVKWFN9vSSk", 93725165451},
	{"FdHCdQuv76Uqec8TxXQsaR5AuyrQq1xTQd", 93343526678},
	{"Fp6p4tqid93zSBvXnUpJxGiUx4bXwLDdBG", 92138847173},
	{"FjkGvQhCXdDhTgmX1dCji8tDwCTvXNbxJ9", 91930106780},
	{"FcZsPcGD1hE49rRP9wEmenCi9hkY5qPmYh", 91309627676},
	{"FcXb9SE6HSUhntcQiMPrcAxr56WcD9CAFM", 90750586356},
	{"FdCQGiKWiqmvhNxshoaXUCxnRz34wvwRGt", 90250802319},
	{"FiYkxLbi3WsHBbjbeNMaQApo7NZgsZvxaz", 87332145089},
	{"FiwLpcNpQ3wTzkwnox2X59bQMCVuWQu4sm", 85000005596},
	{"FbWLzCw7FSuR1UtLMf9Eu2XEF3LkxkDzYe", 84451854687},
	{"FpbnC1aTDQ9hXwTbJYuGZ86ukGUaBvScGw", 80721120537},
	{"Fk7m8MkNvWfkhEqH7A9cEca5h1PxWCRLHj", 80696848501},
	{"Fj635kSy2ewgbbQEK5sJFp9GpS6cTz6ZU2", 79478332328},
	{"FYgZxqEp1F8AFGEQASfqpCkHipmMvftdP8", 78509852482},
	{"FejcizyLtxQ19Yo4RU9wsBtBcBWGT2FFV5", 78270014252},
	{"FjYMkqLehdX42tJ7Lzt9YaYobDXgKzmPbm", 77596283000},
	{"FqaGKV6ckpXYH6gbn2ZiwArVFpj5KJgjzZ", 77520398040},
	{"Fhhtan7xeJGM1BzrCE9HjLr8VDmWN9bvVN", 77500021139},
	{"FVohX69fMr9Re46kVgYCumXAbksecXtQR7", 77500006873},
	{"FoBgJBZ8attLTPHXCTVjcuJTGK5ftbximP", 76268940357},
	{"FZCh7zjQE9Q4ReFNSp95AAB5J5JcdLB66i", 75948040000},
	{"FeqVU3BKPKz2fST78jwLhKrKFni6eXfYYp", 75104457835},
	{"FfongwqVxeGV3nG7ueVHneL5BjtkdVqcwq", 75000001127},
	{"FZ6gtgoKinmq77myD6hz5Q5o9d76UBM5XB", 74399793673},
	{"FaLW7SDUDtNThPLTw2y8q7Ei4Ui3Vk6q3b", 70855267761},
	{"FWm9aME24nvFJSyVyv9Ljk2AZreu2eJnTy", 70283545678},
	{"FkCQQq4hUYn3L3QtFdRxPHwsZUoq9cerQp", 70163062420},
	{"FW43XUmp6u8tRbVcTvzHNswiSFeMpZCcXQ", 69998682655},
	{"FfVQWDPXaEqfdpnG2DeQZDRf9qCL41xGAH", 69475495583},
	{"FeGXFCvof6C1xw94ZKvrxhMWx6C6EBJ18r", 67222840190},
	{"FZeT4BkGxf2RXnHzBPnqPhVpAMhB516H71", 66848030246},
	{"FaD7Qr2K1MZPUy4cPunm4Lxsj3ef6bhcoH", 66366430018},
	{"FkzmaunpZck35vcGEFVHeTDvkUoiHkHvAh", 65530013901},
	{"FqtFF2QKRTRtcQmBPjJS3yFKogi2Ah3fWz", 65516638929},
	{"Fpf4Wc7qcATK5YZRL4ngMer57wwdPuBV2P", 65496268983},
	{"FZ8riuRQernqNWyzxvaUKvM4NFW5CMtE82", 64026064033},
	{"FqH349AK7uzoQngC1zsh2iBai1nsqn9H4d", 63317364151},
	{"FjYdhQZLVevVVjLxfr9uAfoDKSzVrkxiVT", 62500106780},
	{"FbF2xR1hhjcDMnMZ5ihQMfKsm8aKir5M8w", 62500000183},
	{"FYtbXdrqGzuFuBgGYsCSJYwhm4xHZkpAPd", 62328182399},
	{"FjpCmRNk92Fkx81rxsfed2yDjZNyzhst17", 61825138443},
	{"FgHnkcNWub2rvdWxUWnaJv8455N48ZfpLB", 61026598318},
	{"FqJvTD3bwyGyXDqSkGUc63VVKnBP38RTyu", 60208564531},
	{"FX41FkBx5BH8ZGB8TUD266g3bQ7LYtKNJa", 59899507054},
	{"Fc3hJzpTYn3Fx7MQz2qgaEgQesWXhBcJio", 58368648184},
	{"FpahuhRAn9BTzLRagybxBxi7ZMoSxfEjhL", 58085011639},
	{"FsS7CuzqMqaarHgKtvo6apimDPJJANT3ZU", 57770299780},
	{"FhvrQmCKw5DhHbz7AEJvNmNUfBjW5CeWG1", 57500000000},
	{"Fp719HmFm9YWud7MGotjMYJZoErVHkiDY7", 57444999529},
	{"FVP2TfqBna2EhbJ1Zy6NxpMiv2aEde3F1T", 57148771209},
	{"FgAFhWuJZMPW7Y8Zi5xSJiKUVqckiNy4eH", 56958114728},
	{"FoLRAh4EGsuqxPyc44Y7b1EGDeR2mP59r3", 55840600673},
	{"FoRLTLR6J2w4dhAtTzpVLbB8yYFmrjuPqh", 55410000188},
	{"FpDLVaAtrNan5zmtEvpjyW6cWt5ySqxEHt", 55000001082},
	{"FqUNSrB4jDwxtnwgB8CefywwPhcoKFN4NE", 55000000675},
	{"FqvvjQRARuxJUoAyRf8EdqrEiEhrb1F1Y4", 54635933497},
	{"FWNYcSG47WPnBjTzK52D8r1eWr4nvaw4wD", 53651648372},
	{"FobzMVX7933TnzxyTG3P93QjxaPEAeNSTn", 53485253431},
	{"FrfTW9w6gHtJ8hGocrswXF499L3VEheLBV", 53305613110},
	{"FsQtFtnW7Zf7SXo91M4vReJR9PmYii4HQ7", 52847259961},
	{"FsmCEPutGLYKQmQQ3EhSAbsAWTZzoPpeQx", 52557630102},
	{"FmA5gaNM3GGfWeBgWbgw7WVaQLWx5fYbLC", 52467831237},
	{"FXAWB6BMWagRmMWaQkbLoFmbnSf52ZEeAH", 51540073277},
	{"FhitXjVSJgDCCz2vYjpT4tw4w7VfmXtvkB", 50762750000},
	{"FYT8Lvu7FZR8DKBaguXWSdSXgniPuUxYa6", 50437045000},
	{"FnnWZ8atn5VoWfBJP7skxe9v19jsqFLeNK", 50000001451},
	{"FZaffutU35DkTF6AGJ37SHX1ycGhNFUzha", 50000000000},
	{"Fiive7bU2TkrQSeZwaSBk29ZzKaA233LDV", 50000000000},
	{"FeUibgp9UYePmzVLByZfZwqm4sVjbcazVc", 49040581360},
	{"FcYQpGiebv3RkUkhJc3s7f8GSQZbvHvvTt", 48727100596},
	{"Fkjo4jnp7hzYGaMmJzQYKiZ6ZA3gzX3coS", 47500073302},
	{"FsquJLUjvcQ9vDTEkwe8MAQTcNeVLAhEFX", 46969198002},
	{"FdwdBoYj1N45FmjVPfhcDyDCpEJ19WxCFm", 46549020000},
	{"Fp3NFXihbaXhdrFiJfAocX6S6RNgx7X8Li", 46549020000},
	{"FsqUYMzrCPFXVA2pvr9schiCcR7LyNAVqF", 46307006056},
	{"FqAEkoSsNwApdrQXWrkbNSinYedsQ5pCCA", 45775696431},
	{"Fhwk6dobUJz3XjJAg6gwYBdH1gMkyCih5W", 43407277873},
	{"FVhjcR6vzKAjiCutWq1KWc1p6HCzsPJFko", 43210636272},
	{"FmiXNaUV5iDwhtgs7xwx7ZNv6Eh7WwypM4", 43020000193},
	{"FiXCxsSNd9Yqmb7GwGXYLVKL5MWzwCej2W", 42786344772},
	{"FbuKCnQeQk8fu2iUkU9oU82AhUyeaodnU4", 42469736946},
	{"FqwEcWeipyq1aiR6gsBxwR1iS2p512DvM3", 42312621524},
	{"FhS2bSS9c7mKWYCLp9Eeq3K1Ub7o9TCnyu", 41509739135},
	{"FnNsUb9WnGfFgp2g3QkFT1V8tX2rPjp8jo", 41247225549},
	{"FispUSthH3rqjmzUz3EAdfFuScDGvfosaA", 41142699896},
	{"FhJqYq4PKkZE3Vy62imkTwz6Qj3F9341Pr", 40996197028},
	{"FpoAw3oJkJhkTKykpRR9kGidTbRCPqdbC2", 40594178004},
	{"FdXKha7DSj2XgN8x7K1BoZQko8ZXwVBkcw", 40405002362},
	{"FeQwCpJgAEfCSvrDReSpBfNRLJyRvWAhLx", 40000000000},
	{"FbF6d4xyyvNHqEss4D761wUG8pbhswnvKL", 39723467331},
	{"FdxfQmFr45ou6wRTZ8qMQ275PxLyK5LRQN", 39702670974},
	{"Fm9TJzwfoPcNGhuC5AB5JUtHctimgfnSB2", 39499999478},
	{"FizP5dXwfX4X4EcCPcMG86bmDvYyn7FZWD", 38810713807},
	{"Fdh4bWR8Zyfbtxu3ZdWkREAvfzvSDNRiWy", 38470306500},
	{"FXRqWpfVKo7SnhN5qgoqszvimrVZviabyU", 38033354560},
	{"FbhVvAKUx6Gh4pe9fpTXk8mtx5A8t7bSnb", 37935000468},
	{"FVWysVZcMKwub23mqAKsUs62LMSGiVC8MJ", 37800002597},
	{"FoNUfmzaKW4JniRtVYCwq5z935npeL63c7", 37500000000},
	{"FoT6DSNGWYrSuSFwdWpVKi7YbkqAyCrq3w", 37500000000},
	{"Fkrj9A4mz4QWmvaVUds9yuHB7moFUeQ8Pe", 37499940837},
	{"Fr7YuvCjZ2QyTvAJRiq6JBWdELHZ4p8d1Y", 37495276059},
	{"FjCXMsN5YZhsku2ihbkFEgjbcCH1qVw59d", 37478170000},
	{"FbYTmCpbudnenKFCAUwHxwTQrukQtcr2vr", 36458787999},
	{"FaBgTTbbBNprihz4Qcu776Xg1iyTwSeRgr", 36301006260},
	{"Fed9vvE2bL6yP5REGaXufTznyTyFHVgkRw", 35708588507},
	{"FhUb9T82CYtQPgjens8Eo8BJxBfZT7SVsk", 35400000581},
	{"FYvmHw9fpKV8tDBj1vtxacikzwTzMPQgqd", 35326641481},
	{"FdnUsQG8VdffCiPAhEqVgSotqcXEd6jnkn", 35195003146},
	{"Fkvp2WHH27DGg18NZZfGyHcY4ZpcRFuDVG", 35100001603},
	{"Fbtys2gsGAN5SBYJoHqviKcx7SScQkvUKS", 34754240052},
	{"FmA9cPuaQRTw1kgzCZerx23qmedbQucUcd", 34702701287},
	{"FhdR8qHBn5Q9i8KvBgtWUfy5ySENQmnFLh", 34466171534},
	{"FYwz7LsTV8tBR3Tj3v3TNQJwPUW4pLLesW", 34175536676},
	{"FYe6CyssR5jT33fvjdVeZ3e7ZDPGm3cxcK", 33966445753},
	{"Fpi11xynEkvF8JKTDx1gsY243xTZwBQn7d", 33874371529},
	{"FWo2nqmVoSSSAHrjYawdtZ3yQDa8VjVkBD", 33466343052},
	{"FatZLiehYh6xLmqjGKg2YDbVWtsPHKEiEw", 33258742358},
	{"Fip4SPJenEUZizsxcVsaNRxhGMKWq36giH", 33179475493},
	{"FsqMLQkEraZXubXyPAttTgYjQx7GmdgxgM", 32819204539},
	{"FXjCppuvzyTvMLMam8kkkmiK2HEa2sVMUQ", 32755007260},
	{"FbndTEkocLWrNMZk48XSQsjjdFLxDmYVPF", 32700000000},
	{"FWNZWs7e2ARHMX6fb4hC8NfwFoNjaYiwP7", 32454928245},
	{"FdxjA5kXFyBaCVcoEefhPLyWiDXvNAstEZ", 31209444757},
	{"FbZK3F9yZJk5sUoRtAcG8M1Xx7keUopMeW", 30095002136},
	{"FW6CRenuTd7pPATBChvU7Ldwntpts3A6jo", 30000000000},
	{"Fd7y17SD2he8fLzxgHt15FY2KHHyFA4wZk", 28624923963},
	{"FgpFvYGMzX3id7mYRnxiBDGxbGhfrt9LYC", 28591738188},
	{"Fers6onTAFNbv4WZGvxsFgMr5VW2uPtWmC", 27835000639},
	{"FWsW3XHkAGHoV2ijysAfY1t5KHjJeig5f3", 27710003904},
	{"FfrUYmNnmjV3NvBiVzJ6GtkSWnzaPswxge", 27695011041},
	{"FpJVxQ7LxPczFjJwDr7r7zLZY3JQT7AVf8", 27131938306},
	{"FVy7cJAGzPRQ9ZiwjZwBG3XNL6dKQN5KC1", 26168959399},
	{"FWfAiA719inBCXLDSxw8HcsAvWVYvexYr7", 26021266338},
	{"Fje6tQEKkykd1zPSroeL7ULtBJb9XWb3rv", 25652984985},
	{"FXnt2JwW4aHd2DxwCY2Z3CLQ3yVgr1dyvM", 25459444714},
	{"FekSA6Ed1sjbr2puSpRGKUhHJLEVkZA5Gc", 25271590656},
	{"FXNKUvF5iMsGqMUCJDvXXhGNHEzQecEmBU", 25205000582},
	{"FideW2jT7tbVBV98Se3VrJPBnxMHnFbJps", 25195000000},
	{"FrPFUFKUsB9DUxM7tmBwYTj6yxLpVmFCpp", 25192573884},
	{"FhWhD3VUcSW7HoqEEuU9tKKvrFHUMaNQ6y", 25095000011},
	{"Fju531Acdg6Y86Dk4PkmW51h9KqXzXUkaQ", 25003029291},
	{"FVqMWJ8GTHE1nqqGCr8C48LyKeLSTyhmyT", 24918938305},
	{"FmvLY1PtJAzZGipwKXD1p4hgyoWoXty3Z4", 24497869102},
	{"Fc455WTuMte59fDmTKig72Ptg7tc9Ftufc", 24467812389},
	{"FWD7Cf8VZLjZwxkohjExQ63AgHVRtgVXMc", 24458060999},
	{"FfLcrey1jd2Z7HdZFgQp8oghKZmPtDZVGD", 24121937656},
	{"FstYH8DCeBVbLLvZQphzBP4CTrHnrUajny", 23363574510},
	{"FeAwBTCBvQv8PAKg16Lt2FfU2eSe1ixj13", 22835000297},
	{"Fh88RdXesPDhkyxJYUX6URzz1Ds2wzcQLc", 22755000959},
	{"FkzrZ6u8GKdZD2r9Z1vQc7WhH243vjDtPF", 22725001383},
	{"Fo8ZsBmBsEK8EFfoTuFcJDJ7VRVq5J23j2", 22715001099},
	{"FjfVVVXNUp2Y8jfuYL1tJAX21GEYHkL7Uo", 22710000000},
	{"Fpo1tBVZhRpWFmFBzRU2XvDDVEZFLmQ9LW", 22704124377},
	{"FjgiHYdAsGzaZWKGLByd95uYBFPoxmMeLt", 22700000000},
	{"FYv5bSUjpU7asj5LLUNE4wYi6b3gCAr31A", 22695000039},
	{"FmW2mqd1ydmGuXDTVwYP5tcRvhuWPaQDw9", 22666834355},
	{"Faxqoqvw62Pj3so4YKDuYSwKsfknAtueZF", 22605003860},
	{"FnJbyCoV7feVNdTCjCYkafiD3JnAaA673b", 22600001766},
	{"FXjPg6jHUX4rrxWTfNAo9MBmsPKXkvD94G", 22595001128},
	{"FmTQXJwbLb7wSdirFFH5Bx3PmW3eqzCqL2", 22540541639},
	{"FVfW9Xie1sqRPziLbzesszxhdmcQuNr1Km", 22326926309},
	{"FgxJHd2ZwuS9ZkwBYeQGTHwHEGwUMBX4M8", 22311693183},
	{"FpoyvgjLEDuw8cmvnB2pgagFMNu1ZrJGUf", 22306545319},
	{"FWkqz7BH4cfajLPmx5hKVhALGff9GQGCeW", 22157715002},
	{"FoYmpR4qA6z6Q3Xx9WYdvpoiqbCPuPRmNM", 21818358008},
	{"FVXPr5UeWK49K8pPXLGK8hWy3s6b29Wmd9", 21693674009},
	{"Fakwx5XiNMYrHWvSQHvwvhV6krj3KqAbs6", 21395402959},
	{"FogGsRoZN4jkCzLkUgo3woTwZGP8cLY5Zq", 21114637380},
	{"Fb8irWyxenkhNb2wuKjFS7PvMLdZTWQ1oM", 21045638737},
	{"Fce6dvK3V73RGnGtoS3FTxp65HFnYCxHfS", 20863477562},
	{"FgdwcGVqRacL1ie9enJNtNUov6huBhfhKS", 20859940977},
	{"FWTbGdRYvhsaYGXhVf1iv6nQUbFHzN36Ex", 20762067809},
	{"FnKwWvuNP1fVwJ9Gf4LS8j5qWQVjjr6mNo", 20432710152},
	{"FaoosHrGC9JaCVKjTFVc583Qd7tEN9rjGe", 20285000824},
	{"FrVmQR6xjZGCPv84a5tggA6kbggXxoc7ss", 20230000000},
	{"Fnv6gu6gkHgKmbcWKQJpSvHHx3WChRXpQw", 20195001596},
	{"FgGDsL97tBpYQxJHkE91w5FWWiJ2bLViCa", 20158714569},
	{"FmdVQyuc4EUm7HoSdwvEsXMVEbZznrB57x", 20125005723},
	{"FWyG2E1CLtx7CaVHdXRUrzQ95mRGM9qweh", 20105000641},
	{"FkmcREEdrUuoh4g6zHpFHxPMieiMG8BKXP", 20100005027},
	{"FiNEfcbTFMQcapJHa1BwLs8JngwxoTCfhB", 20100000261},
	{"FmWoB1owdQsP9r7q9nksrcsLR4C2LTCUsS", 20095018717},
	{"FkfWqwSgNsC93L1UL9L9LBnQZqUkEXmt3U", 20095008259},
	{"FsqbpnZTJGrvPk48inCdBW88urSjoEsK1s", 20095008188},
	{"FpB9wYi3vgq3VWbzbzt7TzzuyrFnWMoKFk", 20095002344},
	{"FbKTj665Fu5yARjmM5pAfNc5HoLjT86nV3", 20095002282},
	{"FcsupaNwdmuCU9zFCZkdgir37faCA2uzYr", 20095000847},
	{"FnrZep21cKneGK3EP5sj15fNHi1UJ3jCBW", 20095000455},
	{"FjSz4EUN67fpQvDLNPHH5FG21rYg2MB9WX", 20095000000},
	{"Fn61M8gxcKjUnovhCssiHLMSVCGcnDqtiu", 20095000000},
	{"FjjvSVqKFkBVXdv9exTLhfpAYKCfZARxgJ", 19999990063},
	{"Fgj5EEspXqqAZTfD7xLW6suqCc17JeYRWr", 19994194124},
	{"FiP5igyQvnF527iPnAPsmRHsNFKXGBrFLE", 19986092916},
	{"FnFQLLWZydMCeLw3VCxcb8whA6fiXnjcgv", 19599656621},
	{"Fr1QiB5XAEe89QbTdun9Fh4twoANuBSNXV", 19504521547},
	{"FaaPEw6z3yHYhRy3XUpWUT3smFMJoW6HH2", 19120207956},
	{"Fc2kBz6UjSyWYNkuwgXuS8Y3QNjUUWMySz", 19021425489},
	{"FgciUrn6jBwyWJNz6JtDTUW34G3xBQM5qN", 18869077798},
	{"FrttdQ3ZYShivcx2unEzi7nv4sP59Z65fW", 17906294016},
	{"FpPqrfb8DitpUkgaKC1CrW53GgS9TFWK4L", 17835000906},
	{"FibLxEdohdmw4J7PRwsTXFaqwxS5cP7pjL", 17830000000},
	{"FtPYoEYq9S9y9rwnpWgkBYsjwb2FaaYBJD", 17795000605},
	{"FsPL6gghgrNusPA2pxKSAeu557sUK9oCcV", 17710004500},
	{"FrWPya22WtNt4evV2sGybahj6Mky3fichn", 17700000000},
	{"FdSx5bUJNAwJ7MKHPV1U91bjhNzM7QS4vT", 17695007469},
	{"FkgCnKjPqjdEaKRRbhRzfTQFrtWyUPCcp4", 17618851096},
	{"FjJU4fyqHkZQmBShuiiUYT8A1S13daPSsW", 17610000591},
	{"FsXZRtB22f6RTX8W38wfKQpys8szL8vF19", 17610000000},
	{"FYehkTnj9A95BXDVMLoRxYvLMUYoCv2Csu", 17605000901},
	{"FWrmSAaNk1omDxRhspCYjmfxNM8C5djfpk", 17600004341},
	{"Fp99pnbnDGNfhmRw2iMEafkXWUD5pexmhS", 17600004268},
	{"FasrkStV2LkoD9msByJHrrrBURgfkhew4D", 17600000390},
	{"FkPKUC91JWAmfQuHB741f9TC4yNp2bVcEU", 17600000288},
	{"FqGj6cN5M4MMWZy5nnX491B4VVVg8mrU4u", 17600000000},
	{"FcGzfKDnwQT3KzkajXJcB6ZDamLCHkj68d", 17600000000},
	{"FjM3uyG9VQwfWNCq8QKhJDfEPoLTFucPC9", 17595002037},
	{"FikBqL62ghSKwaZjg6cWy7eVkWgTuea1wM", 17595000982},
	{"FjWXjbaWuX1HhtbX6GwVCaxdNunSSZtakr", 17595000792},
	{"FXsaCaHK5Kgru7g7FNwf1bLdpQaGQz6ean", 17500000692},
	{"FhopqrPWn75VVhCzrGduP3iy6ZWzwRWN2v", 17496630974},
	{"FZ6FwC43ZtDDewtHsHJjqipT8A5ezrMmMu", 17355086536},
	{"Fpvdt2R6EjUUKSQNVKPKbVNF1LPPow54AD", 17180340413},
	{"Fp9P3vLnUT9CzVVqsptDzsWEjP1t2Y5hDk", 16989247304},
	{"FiDxCoSKhHNdFsVdi5F1QNd1AJ9hY3iE1b", 16159698719},
	{"Fp4NzMNwjG8rm5X1k3vEuZcUtq1Rg4VNj3", 16088305131},
	{"FqmpxASdsA2EsDSudZV3wS94k1FbBRcC2Y", 15666666667},
	{"FciS1Bh25nQX5evz1Bwr5KqUtoYVyXXVaX", 15320004645},
	{"FebaeYuQi5oQXY89wqCjBErnJZ4mfUR6Fz", 15235000000},
	{"FnG2ziJBWFNZj3R945Ffy5i7udbTXQYjaf", 15200000000},
	{"FW5qS4d4crLAUNDhAHTaBLF6KgmzAbxsSr", 15195000340},
	{"ForLsKgXfTURezjKC3C1dHCMJgodYKkgBf", 15195000000},
	{"FkCHzNe6dVeaAaFkayfndwcv4LaSkz8nW3", 15190000000},
	{"Fsn4SJS5AFWPLkoMR88VDAQRRN7fqbG11Y", 15110000847},
	{"Fdav7cVEEbFmVL3epwvLnyeWeffjeW47n6", 15110000237},
	{"FrEF589WacGtz3X1k3JL4JHsB2iSGCQCst", 15110000000},
	{"FsrsCc4hqQuZjmv2rAn9nsjZArPa5smVtj", 15105002623},
	{"Fg5Qkik6gNmVuMQsTeFYTA2pdYDRZ2FfJP", 15105000394},
	{"FoLB1XMsDisD8vUojYpzMRpKborDijdttk", 15100009482},
	{"FVyFupashnB3Fm6Bz8JGp5eEZQBiFCknL5", 15100007739},
	{"Fh1F288aoUgSyaycTdmcThAJv2qbXjDhwy", 15100002827},
	{"FpRt9jZfMynHQLoVQs5e1GACiU67NTKVoX", 15100001809},
	{"FqSpD3nTXqZxub2YpgpwjK9PXxnHvEifFx", 15100000604},
	{"FZbBy9N3VLNsUt5fgxX7BmVWxXU97JP9Nt", 15100000000},
	{"FY9YsbuMku7nwRBjAm6KvRy1EmBoGGribt", 15095004340},
	{"FeLe4ALePN2xaaghKFAfozJK41tN2HAuMd", 15095003169},
	{"FjY3nQp7hLeKnVwmTSQuLTCA7oDdH9x7Fo", 15095002484},
	{"FqEaBDqQpVzuccuQSKc6TSR6rQUb8oPvQj", 15095001513},
	{"FbqaNEqEoK6q2ELjnCmGffLz5PjW8TDbe1", 15095000917},
	{"FdyUbJtnKdqMf7LaMSumKJeLJDor9iNjQd", 15095000248},
	{"FZDFMj7BchmRhDidYrxpiZG8iWK8XwFdxL", 15095000248},
	{"FoTbeNmNeY8AVWRRH8orhD6usgbtkwTSyr", 15095000000},
	{"FfFTmZD3kBbTsdzoxsY1u6YQPPksnce4Ch", 15095000000},
	{"FpuT16aQNo3XyogKaSCvHZyS2uzbomksrW", 15095000000},
	{"FbL6iHCDBqdsQbbauXkrng3CVJTJoH5BnF", 15095000000},
	{"FYBP8HKKXEbM215ua6s3Fp2FXX6BhFqiLR", 14824442176},
	{"FfR4JRjtNFJ2gpP95Qza6Dno9XJUjCbx34", 14564274571},
	{"FrmVWXbrKHDeprMSec6KZu3P5QzVudSfUd", 14144722394},
	{"FderYtoir5rjmsjRLSHVoULKuEjwfcCUox", 14124463955},
	{"FtJ7DGaMhNMQDo99GwwiAwjugpSXTY4aXf", 14031673552},
	{"FcqE55ztp9hpArqxtwrcgN5tn3wMLMR8kg", 13846052365},
	{"FjJknYU2CVt3FbRDVsjQnGw5BBxmBvh6wu", 13785454571},
	{"FdTFD9PSYM54Hq6EVLoGQtBRcfpUBBSzhe", 13582855075},
	{"Fm4p9ijiSAc4kwry9wH5Rabwep44sZBNJG", 13204178549},
	{"Fe2MQK7Wq4fdP9wHQ7tDdarZYEXrn8pL4L", 12784975720},
	{"Fb5ZXnB8F6BREDQnW9X6XLZTEmdfKXTQB7", 12735003217},
	{"FX4JoQUXnHUN26Wy9xUkT9T7kZGa5bSrKn", 12705000735},
	{"FdqL4nWaheTnukG15JqXmtaY1bV4gN9Tnv", 12705000187},
	{"FXPCGRZirEGdeqTHZ1Aj5BsiARu7FD8amr", 12625005201},
	{"FqvoP2mpZvVawVfnXvr6F8wCmXfm3EBrmc", 12625003858},
	{"Fj5AGMU8Eg6VaNGAmSUba53EespEmgf9VZ", 12620003551},
	{"FhsQUJZJVEMrepGKTWhHxesBzVw8vBK3Vh", 12615000647},
	{"Fbsvxhrn4U8BsxtekSyK5DN9hYHh6mnKEM", 12615000000},
	{"FZrw6LQ6DSxQA3ZyJtpouoinqWZ8WMokj4", 12615000000},
	{"FfyUtQQxvJbGtF11YhdcCggFRVcgccsJyN", 12615000000},
	{"FWTRC1B8bEWA71wHT8Ro23YwBxDF8Uas8G", 12610004096},
	{"FbokJwXFcHS4eennardoZkefnQfr4gi3av", 12610000334},
	{"FW3o2zgdVEsf9BNBAojpjMHe2CHjAvGUXz", 12605003973},
	{"FpsrBmjb38eXoig7vjeXQvktk3hWR5wyj5", 12605003543},
	{"FmYMMkgfexZ4iM1eutdcqDf9X2Mpx6GzV5", 12605001740},
	{"FriTKr4imuKW614G7y6p8oqyqHhBd5A86e", 12605000621},
	{"FaQ2zWtUFrAK6pVZoQ5H4KrB9YiocYkT4n", 12605000475},
	{"FkCxSqn1TKvpjki4ruNnQ7wAjoW9BLncer", 12605000000},
	{"FhF1bEVF5V8rDJwehYXGfvL36KcpzyePof", 12605000000},
	{"FkkSc6audxtoGMxaBnYYMUM4mLiEmzjwSD", 12605000000},
	{"FoeLpAmoW71JpY2YnmX62vXQAuV6vkEZ1v", 12600028900},
	{"FVUcHq2cDMeDPyEsamfxU7fwJiGMNVReJA", 12600006160},
	{"FXvKqiS79ynmMCZ6JTmnpCTXjUVqCoX2E2", 12600004531},
	{"FZJDFBbM6LpCaWhiK9PGgWkvvPA2vJ6RGM", 12600004421},
	{"FaqL6cik7vYC5EQ5WERV2u4d2BnGQf9Sjy", 12600003741},
	{"FVU9yhNiexKdH5RZBHao2uS3hL4Qwd3Lqq", 12600000000},
	{"FsS6vEzkByamZoWwbpSEcaUXL7zxkaT7VF", 12600000000},
	{"Fhp2DTxuq2wddQEqqhHN4igcdNU8GgR3Hc", 12600000000},
	{"FWHXJLgYUU2PcM9Co6S64asVTQ8qie243R", 12600000000},
	{"FZ72oPgRfcW4S1LB5CDQ4voQgPyFa7c8Ay", 12600000000},
	{"FhweoNx7jrx7FfgZ6e5nfpmKFLoCmTyv9M", 12600000000},
	{"FrH8Upg5UxwZYW7yPKH9BjcXgikEGx4Aiz", 12600000000},
	{"FmvMJLcjLYaj7gQ5tpkuZVBQ1L77t3NzVx", 12600000000},
	{"FdXCNBykDkJtjqqGM8g3YdvUCiAtZrEvkW", 12600000000},
	{"FYmqgdFwtu6KpGb5Qfk2Vsy3ryVKiEf38U", 12600000000},
	{"FeZU2r1U4gycQQ6qyGLzc4sRdTsoZPzUq4", 12600000000},
	{"FizGo3hiMSeFxDEWh83DDaHv4mg2cST4nv", 12595002892},
	{"FfVH2vEZ8yAtFgfbhxkzjx2iEVaE16pe4o", 12595000440},
	{"FmMaTxzaKad2eLw44SrPe2SzEQbSdxRVHm", 12595000261},
	{"Fkd5ZH1PxuoDGLa98aS1T4bvYihBUjVwkP", 12595000191},
	{"FXiLEJYgjfmBEbEqjmkF2KfNNZ49obPAv5", 12595000011},
	{"FicDoxpkMHaTePwaR7ppztDi8CTD4Tc1hE", 12595000000},
	{"FVTEQW5YsHHqHAMz6zDV1c41ZaF5QfRhqU", 12595000000},
	{"FZA4BJ7ZT6XFc7puQzinhZfGx87iRSHPLH", 12595000000},
	{"FkXMF5h5zQfNN9fM8cMvLjqn7uJ3JDvSXV", 12595000000},
	{"Fg4tiqz7D8DweUBTBBuGP3M4gGyfYSt1qC", 12595000000},
	{"FVekhf6rco9hBvXkMdyuH88ETgXxWmWAvz", 12048640000},
	{"FmzjPZCkFmMEvq9KnrSE5rWEmppFVTDPBB", 11876838708},
	{"FsU3uxywZtHwb3mK4rT152Mw5WySMe4cuH", 11825980192},
	{"FfzLNPXCaTtg5J2RB7AvWWspKqyis7o2gz", 11809819036},
	{"FdmjWvRNAiKtSC2iFxSRTKKxiBMpb8acth", 11639712942},
	{"FWPYGULLw5p9s4CGdWNyzEjpHpXooLzKpo", 11516222027},
	{"FZqrcNLnSNzQfnwpUKpoTfReET1cYfR2F2", 11338049341},
	{"FgnBdY42awtPU8SnRsUzZXqsQuFeEaJ2LK", 11221054522},
	{"FmYauGoSeoA6yr8m5d5m3haUC9EGNVBBd1", 10999998111},
	{"FpPjNwCZB1gHxGZsmY5m65YaM332xx1oJA", 10738350853},
	{"FfJey9VWWrkQYKxsufbZ1Z5HY8VxsfTQfn", 10737656161},
	{"FmrRrSuDiSM5e4KaRMomX2BHQtzXAVpGfL", 10554168787},
	{"FtNLfSxYD2jzPZqP4WkEsCxCuvcnpxPCvK", 10379546714},
	{"FbQjg158kiGkFTiGqBtnGZKBruegNbyKWJ", 10235000000},
	{"FbVXRLR4VR1nvvMkyqA1rwbGe3TQ9BT5v7", 10215000000},
	{"FrcgYphyyWMcXV6XktC5NfkkuZJ2sv4bpu", 10206280000},
	{"FhMk9mGxpf8EaQ5FvdbsGXQPmSizPXnqDK", 10173308626},
	{"Fiaocj9vhHyG8xDQnSAM9LdVcWiy5bFm4D", 10115005177},
	{"FafQMSqW3CMkWoP9dSwfFUXH7zbnvVk7uS", 10110002515},
	{"Ffc59v1KrN3B7LyVBttpqhqgGrShiHVeey", 10110000368},
	{"FZ52o3RCdfsc3HkRust1bAxmN2NxAyFXYL", 10110000335},
	{"Fh9dBmTuarjRWUEyaiU7128bTkCVJttEgP", 10110000000},
	{"FgyudinHAtvCDv1srPhMZTb7poFFNUWxAB", 10110000000},
	{"FedYiQijN6cjGDntRX7pePRAxmXu57JByo", 10105004167},
	{"FoJM3pME5XAEpsRPFtjECuCG3y3cDHak25", 10105003128},
	{"Fbm5kGmwQLsZjiTrW7tWpetaotooQyRYFn", 10105000523},
	{"Fk1YYeahmJdubjHDkHRTUVkDz2ZGFJccoC", 10105000000},
	{"FXxf7pk9QSwNLvzCncZfxf1eCW7D9oiGvN", 10105000000},
	{"FY5NzSDaiUzrCJTbeyThBmmNuMGreBqemA", 10105000000},
	{"FdXyzFsrsUxNXjsCtxra6qddNzP4tmkbY5", 10105000000},
	{"FbwCRfZpBdkxroTjpFBvhB7WmJSwVpDarR", 10105000000},
	{"FjSPAdGqmWUqW4LsRJb8desigQxoYyS7RW", 10105000000},
	{"Fpmr2h9aFBU8kJkz126n5unvymoUMn4qiF", 10105000000},
	{"FeJsh3MyDoz9sfUVasswDnvk6M2RXSy1t7", 10105000000},
	{"FWzwXoaGjZWtBftRybnt3Fer6cvV6vyeQc", 10100006509},
	{"FbURvtmwQg5C5nECKJMw16w3TkTqVbyoi4", 10100004807},
	{"FroU32kDXQh3UYJrKcHg3SJUSPkBEdSFxZ", 10100001559},
	{"FeGpw4nrCBwUYDzqKTdgyvWFMJHeHiHBkT", 10100001144},
	{"FYJnqrwhWtJAzPX1wHN8KijkTsqXK8iAoG", 10100000482},
	{"Fq4Zy2j4pja3fQ45Qc7p3EAehFtTZojoxC", 10100000296},
	{"Fd24Ao6BxyyAnQFEkJ9SPsZeAtnvHJ9yoE", 10100000193},
	{"FfEAvGXw9EVPevM3SJmVYvcbGi6yE1EP3U", 10100000191},
	{"FirRqGaVnr2mxMm4xMwdQfresqXY4dmjv4", 10100000023},
	{"FkF4iQx4iAgNqRGq2N17PqBKKbPtdhc1P9", 10100000000},
	{"Fh8gbwivCBf3Hk6qBnHMst66ujV2ojiHrD", 10100000000},
	{"FcMjHWGiYWUa4F5FTqpmGySALD6D1kpUeg", 10100000000},
	{"FWcsSob5VAfCEr4K45CgNeSsviM4qr7K3v", 10100000000},
	{"Fm74VvrVkQ3VHQQ8YxkdpxJDSsK1zssh6S", 10100000000},
	{"FhjxjxEuPm8RY66Q2G82mFXfJKWwpjtw3H", 10100000000},
	{"FXRrKP9apMfVT41kajesk2aVfTdP3Uvxge", 10100000000},
	{"FrZNXK3G9cbQwwAApJ5nRqLc13gjFcW6ts", 10100000000},
	{"FaT5R9CgXVJUqMjJgjNCEfmPHPCRULirCi", 10095011269},
	{"Fp4C2fhTgLECWWcZcd5cFNsz8PN8ppr18P", 10095004374},
	{"FgR1c3HvLVUCBo9Arx2w2nX77mnpVL3T7M", 10095003888},
	{"FnPZPxYSsEGrz1xVjjrF4Lo8cwu6QjuWPF", 10095003756},
	{"FpXrDDe6sZnk1Ba48rpnbwXNMeUs3fjbta", 10095001094},
	{"FnsBNRABj4zAYwxT1hJcp1JrwXD1J7jVHt", 10095000960},
	{"FbrrJpUZGT2a7rPWzqZYCGYkoGMSRgG2JV", 10095000823},
	{"FdnRNPVsRZ3MSsi2Yt5FhxCDUpdtDXfMNc", 10095000465},
	{"FsyAp5axhFT3wUSYba8Yt8TzGMX4wvLq3W", 10095000405},
	{"Ff7VVNDYWdsN3AKzMh67SMYZzgcZ5uiG36", 10095000394},
	{"FpgYJNtELpLuVBHLM7qpn8MMnUeP8342xb", 10095000288},
	{"FWzX3RJ1VKppYDa1Np3iWMMpBQWwnFvRYY", 10095000190},
	{"FbaiCAhiBXPFAZGmmnHrvdzSFbTNFUVchX", 10095000000},
	{"FmvVQMTGGuQy4Fyu7qkVXatKLdu9xmBSED", 10095000000},
	{"FgKqAoLiYDtnQJkBzbjxVh3ZXfi6qhRhLR", 10095000000},
	{"Ff7cUTLzCeYKKMAx7gp8RCbrZRPDPaU7Qd", 10095000000},
	{"FYhgcbsw63i2kLoFVvXNtk8PgcFpWXezaq", 10095000000},
	{"FrN9rbYTUvc46Tqo9aTnmyqFCdt4s8NsTK", 10095000000},
	{"FkeASZ9bSG3Ax8YpruRMPJKJxnqY2u52oP", 10095000000},
	{"FjiPpX4J9CFaegr3kxuZUSojmhpDjXLXmq", 10095000000},
	{"FmGcUheYoRdSt8HxHLChnpwJXfvP9u8dfY", 10095000000},
	{"FowxWND6cLfAyidXmWZSpCTu7mV1A6oXPo", 10095000000},
	{"FryyCrivrFt4zE8EbHXopBjNH5Nkf9EXay", 10095000000},
	{"Fs23yGPQUsc7q894qjPRF7SxMafpP4PZib", 10095000000},
	{"FiWeMSAtGdMYsdeErfkeqsnAw5bi22x96S", 10095000000},
	{"FksvEw5A97TGAoZ4JrbhcXsPeQviWUDmcC", 10095000000},
	{"FmxRXWUS8v4LyUvcnFrdhrdbL1TRFVPqLX", 10095000000},
	{"FVrQpMxN9epG95mFdnVuEodpNGMi7wFbCc", 10095000000},
	{"Fnqnv9k2XDDntRVhJavykB1okJG7RUV63U", 10095000000},
	{"FYeBCnvDkMcjEzdVVk23sHHpfDkKWBQds9", 10095000000},
	{"FgPrzFKMNMJ9M5kRAyVG7cjfbeXRFRxV6L", 10044671885},
	{"FXbMcX7Gcij3ApsEujg4vHmXPSMRTZQ2H5", 10000000000},
	{"Ff4ppYqg45YdBDswos74qPFWdGvTJTG7zW", 10000000000},
	{"FmEg6dJFWGikTdQSZTXEXTPoEoAjr7scQn", 10000000000},
	{"FiLz4SopxPjLXz1BcMpFGwaceCimtLWbbP", 9999999521},
	{"Femr3B2Z2237F36rkgcsLBJWWaMhbjLJHJ", 9975587857},
	{"FfeUE1szdCFHUpVYmVdVovnhp1iDt65WiE", 9912471883},
	{"Fqt1JyCt92CFhsYDbHGMe71GfMxBfkzXYL", 9899999295},
	{"FtAc3JoUUVzjsFsY9dHGe39LCRSkTkLBUi", 9899999295},
	{"Fo51EHjAPopUR1MpZpkAFwr8waB3Dw8R1U", 9895234669},
	{"FoQxQjCHdobgrZxnrGzwUEXxsqwm9gL912", 9690643390},
	{"FbaUzsaZdsM9WhZeQd2ktUTfQb4JiRG5e9", 9200980967},
	{"Fq5P9YcRVvHvAooDr4a4LFFZMKwxJUNqMy", 9197136030},
	{"FdQwKFQbZ7x3KPSpQFZcZPJ2dmnfTFd7ty", 8754756376},
	{"Fgu8exhRnbCCnRrJ3stHHcgLoDo6FFHTE7", 8610040180},
	{"FZbnjwg6B8RXQYP4iFk1e1b2oXWgSk44xP", 8489827391},
	{"Foq4Ynry1oQo9WGqrkdQZrpZ4Cu4czL8VA", 8470640661},
	{"FpvHG9gzoZBG6pFHwmaHJvXsAg43oWcCAH", 8347714864},
	{"FqWRGA2mSqCrtmyRTuaZGAoabbVg2nzYZ9", 8296121004},
	{"FmrJgYadeQ3oz6gCK5tLXft1fDdGvznYbw", 8278704230},
	{"FazU5DtEh3SZUfEC6RPiNPrNhZSJXWy3Mn", 8261320676},
	{"FjwceqVVjUKtPKKiuScX1c9mGzBv3dZdCz", 8214303400},
	{"FstG66PtdygCQ6vrnYhw6nb5v35dpB2A3b", 8102492617},
	{"FXpEVVFiSMBeVUxaTYT59WNCwT9gDQCzMT", 7922090583},
	{"FisetBTcPd14YNK4NbtW29fRbhByQXj9v9", 7900001591},
	{"FjuxycHvu2QgKRhnUx9wx4ZkT2GVTnwCno", 7742177938},
	{"Fh6KAyKNU1fzNacFESJq7VfKze7WoeyGZH", 7725000000},
	{"FpS9HXecyDe5PvF7U8rMLqpV4M3CcibKYh", 7705001354},
	{"FVadB2nvUe7FpBEotAaQp3gvtHdUc2rnCf", 7695000000},
	{"Fszu1hznSLWGpBHZktBZktgPssuUM6oGfn", 7690000225},
	{"Fi2g6cKy5d3xd1nmvKeQ2UgCo99XzK1vr7", 7625000578},
	{"FVh2z5zvCgH9V9MEyc4KDNTriWUFkSLqbz", 7615000000},
	{"FdZ3bfp1FJY4S1P3Qg3FWpLtMLS4BMEAqY", 7610004076},
	{"FgJw58H6rWpKZf43MAgPgfFnBTpKndYbDb", 7610000817},
	{"FkkfuxMk9bVtDJYqE9HNXE1UyViFjc9MK6", 7610000000},
	{"FiGC3iBaj7e3yiTHP6uhZfhKp3w8NJxPSd", 7610000000},
	{"FijtycwHVXAZtDeVH5jzVRoY4qxt1THAmh", 7610000000},
	{"FYykm9L6gm1jH69rB1T8hBpGBQpyPV2o6j", 7610000000},
	{"FfffyqysUmZ9TUA6U2xMebhgvCuFJCo688", 7605003131},
	{"Fm2fJBumer3nRw7SpdzBT4Wbb2Rg4Z8Y5J", 7605003044},
	{"FhvyjmdutzoLBBUZEYzjRSpyKZVwyxU4ri", 7605001609},
	{"Fe6q87oqCJ3tR5iSAzaXUDNVUdpgdJumFf", 7605000518},
	{"FdJWxT1Di721HwUEbMzjqgmA48Cx6qdozm", 7605000456},
	{"FdY4VTfGACKjJjhx8qmjWsugV3uUcTxJhN", 7605000297},
	{"Frs7f5NBdmckGveFPwYYh5vc8zoa9Qgbsv", 7605000280},
	{"FVduTkQYJpRL1G6yqrb7akCkQJchvqaVKw", 7605000000},
	{"Fjveiw6ACJ9KGRo1EZQLadSh9M33XFnZrw", 7605000000},
	{"Fb8KRwm7tErBHuvZEADUycMRF5NA3b6a95", 7605000000},
	{"FsMe218Q17o27ZW2tiLRwCkj1JjECeDgMZ", 7605000000},
	{"FbC9WR2StEgnCgQgDewg6tJiPT7fBpjpz6", 7600002993},
	{"Fhq7JFTKDPFQJ94CgTtqFR3YtbqxFhEut1", 7600001827},
	{"Fc8NjF3jCY7Q1D2tQQTQjTYZFaDERNyQS4", 7600001525},
	{"FeUbjtWAZG9ewwEA56wHx4NtrbtEPhUnbx", 7600001025},
	{"FZ5n1ycmA7kGHXngsm33bXTs9KxzVRsJ9A", 7600000717},
	{"FgYcmSyTMUcaFnCvM9DajtUQxDZvUhnevp", 7600000623},
	{"FZubSQpYFggCh1eqWv2xSy7sH3HKrrAuo9", 7600000578},
	{"Foyy7d4zGuibK3JieLrkDGHojR2ZdMhTQ3", 7600000493},
	{"FZNVHpunzYJhRNuCp2iyoRpW29Ysb6nyTL", 7600000291},
	{"FdosF73GFh3J9AVWqX7GHG4iNym9nqGLcX", 7600000251},
	{"Faj4Q3cdbWk8FZQgiCsdbRtRPmKb4PCGkr", 7600000226},
	{"FqFptgqF1xsFMoZwwygWoKKanUzEDkqUqH", 7600000191},
	{"FbMLnzRurEhNZ1fLtbQNcEpEzjFjEWCfiV", 7600000011},
	{"FjhkiWzNHdYXxiMY1LqLtPs8SC6iM2incx", 7600000000},
	{"FsQzWdrLnNu5eVZciCLxjqbmb1U3Nyv5FD", 7600000000},
	{"FWXBLJyF32ni3CUhN3vjJNFVZtsVGpYzE8", 7600000000},
	{"FbpMn1Ar7LUGk8PhKFx3eoNaBkpbJcbF66", 7600000000},
	{"FdGr1xxDHd7L8xTsoTC2dQbuJtdcs1GSnC", 7600000000},
	{"Fc6S26BfJ9YWAhcuVfGEgbnfkKLex4y7wm", 7600000000},
	{"FgS1bsNYbSpPdWxosQNWMBPDWSsCBkRQem", 7600000000},
	{"FmW2jFA2cLTu5jvPSV7VNwzAit7h3qKMds", 7600000000},
	{"FjMbbpvaNs5ST5sv1AxdASnFT9jUWC9zwd", 7600000000},
	{"FmDQzN64jkZyfKAv1MAzdX6H2P9i5PJNCr", 7600000000},
	{"FmGLyqSomfN6dKeNt7WnTb5RmDsgfJDJkQ", 7600000000},
	{"FnXBHXumCKgzbMVwdTsVgzUABW4mhEJrvn", 7600000000},
	{"Fi2Hj7uKVopr24zAXzYBo7Xfg9Hv5Ttvfm", 7600000000},
	{"Fc9idCGSCZYBeYmQcAyTqzJywtyvoHQ8eA", 7600000000},
	{"FWfMauEj4QvXRC1rrDYFNqW4EeHSdmSDGq", 7600000000},
	{"FrEr8eXRmqzHTZe7MUuBKyGtdNgYjuJX7n", 7595007650},
	{"FqabrdvyvVhPv48ujNVNUEURyRzMiZ3Y3B", 7595005620},
	{"Fsu52YpQbXwjt3QkoKV18w3euL2gsvvmei", 7595004219},
	{"FYNza93SdHhg5BBSMBBkLcQY79sL6U12J7", 7595002124},
	{"Fa9SnCSETJ4q8EtA442z9X59smpDk5ppvB", 7595001094},
	{"FrdwufNWyYfzFjWShntYYQHYjG4AnJ9FGe", 7595000907},
	{"FZnAeM3A9tiGyqXsXL714LJyTZzQH4vitY", 7595000850},
	{"Fo8QvFBgtrMShhgCkeSNKCczumcLRKNx3Z", 7595000581},
	{"FYtp598dL5XyXe13Xh9iK6m5m43vpcSJjq", 7595000285},
	{"FbR8HTYVedebgePMfZkc6gydNoWAcYu33z", 7595000193},
	{"FkvpWk2QZtmtyzwWzYwhd9BMuNkDkKDeTh", 7595000000},
	{"FfvL2ZrbALSbGFKf5xg19YSeN34ywABQGr", 7595000000},
	{"FpjxKYqkcKCexrrEGizb9vSdixuNMubNwH", 7595000000},
	{"Fo1dsmSr8zkUucbNp7K7eWUo3AsQHQSE69", 7595000000},
	{"FZvaZqDnMN1rwL8BnumtFDwgtywky85ctw", 7595000000},
	{"FohUg1AEnmf6pnvQsTwxZMmUZq7MhkirLU", 7595000000},
	{"FdQyXNkJfbdSHZKcogGA1HKazuXpb3ADfj", 7595000000},
	{"FbLT7ciQZEZKDPz1K6fMno2ucUHXcUSN8E", 7595000000},
	{"Faowa5nSsaMFAoy8pT942CuJjPpSgD5XzN", 7595000000},
	{"FntS2ZnF8zd87Y6Dqwid4E5b8PNi4J5fag", 7595000000},
	{"Fd7CpnuFwipcyeoWK9nAup6NzkhxubG8jb", 7595000000},
	{"FcQwX2FbarkWRGFm5taTouMfe7Ck1Dx4fQ", 7595000000},
	{"FVvn9d6myuRseDShJjUJcGVYLaFVR8Kas8", 7595000000},
	{"FXKT3YuQepsi7wc9QoV3GV8C2JL52XToAy", 7595000000},
	{"FdBdqaWSE3RYuxgZHcuB3a1zhYZ817eGgj", 7595000000},
	{"FVoUhv1KJEshEbwze8G4J17dV46Wrtr7uP", 7595000000},
	{"FWaTGLAEW7cxpJyNsFKzyQaQv6Rxw7Yjcq", 7595000000},
	{"FZUxomRz4XZWFnAg9oNby4uwCrySULk2j4", 7595000000},
	{"FkqwU8tUU6U41PuGTPUqy93hML4QtCDPDX", 7535000000},
	{"FmEtWLtjNj9N1T1pZZcZBvnvjNPZLv92if", 7507577802},
	{"Fc9JQm5D57ENzAfGHkYVMP2ohudxYVtKt2", 7500242833},
	{"Fjy7kPe2ThnVdfdWv2e7hKB3veAYsoLV7u", 7500004503},
	{"Fhbiw5ami5fFF51kqzYcEi41TVqqyMirZe", 7500000926},
	{"FhhCt9LN2Q3CJeS2UykoEFamRUvFPCdqBA", 7500000558},
	{"FYj96jexxZrkrouvwKcx2REJCGns9uDU6D", 7500000000},
	{"Fa7EhZkWd7fuvJtbPCEccma2MtZmKrHNz4", 7306128223},
	{"FhJhAZ49d8J3zURzqrHPxaxMaMrtBbmrKJ", 7221664303},
	{"FWTMszAnuxQhQgyxDLZx56t92xcc99npah", 7089704853},
	{"FkoBPjsyJzdDLdz7GRYNthdHHgSLnTy9eb", 6955124345},
	{"FfjqzozoMPmcSBmeqgZ1wa9G9DUjAGa6ns", 6874401381},
	{"FmrHQyykUDmRSUmak2YxtDxNoSr8dGpHit", 6800351535},
	{"FVLq5Yp32m5R1QwSWGJtgdVfbupHrHm2C6", 6628253163},
	{"FjCgKQCrhrtnwBTTjrVipbTF9uuFEvtxND", 6548618301},
	{"FjFRyTwgsBL5jjmMm9fcsZFEjEEAaMWhCP", 6502792439},
	{"FbubwJxVqsGXLPSRNVvVB2Cz5QEHhB6vtc", 6077571932},
	{"FXc4uRUj16NwXPVJ6qmhFHwYTeXABsAqbm", 6001857956},
	{"Fan8xWTg6cm2TkS7gEoJxtyibA7bMRr1CL", 5910080792},
	{"Fe14PgxkBabn9RNCDejS72apPLUpNAKMoG", 5766187925},
	{"FfCkGQRpb14UnXpvWwrMogFhRQRQcxDMDu", 5610357537},
	{"FVGxgoHx42eC4hc5CNFnCqztJFj9A8L597", 5547794847},
	{"FaF7qi6DXNdR3Fhcpf8J4ZCV8DAF6hePaT", 5473325449},
	{"Fj8uoHWpjey6JgZzdvk7c5novenTZY7abX", 5381186016},
	{"FjZeUngKbdYnhrD1n9UCSKjwKagstNRL5v", 5375336890},
	{"FsusbEc5adSfoji4sA4vyRyDFeggEWXRe9", 5319417699},
	{"FckMjnUAc4cW5iF8sdTV8A5yF1L2VDiX84", 5195000000},
	{"FmYA7ANJmRtxGriUR8MMJX8wcLg2aKkezg", 5142072876},
	{"FhzyvJkw9RurhWkK3pzcuMysKV1mWB1GsD", 5120000193},
	{"FcFkjmyRcm4aTiTdajam8fcQh1Fpo3Wkvo", 5120000000},
	{"FhvvvXn2iasE7tE6x6xwohF9kpVKCGchmF", 5120000000},
	{"FqnE6kK8iqRhqPj6y4cReaHRLbTS1iWQ7u", 5115000294},
	{"Fp62gTbhrX32QiF97z8ADDs2YkuFuSPX9K", 5110002821},
	{"FeA3X8ZQQXF8mzFN64SEC2A5HcxHbognZq", 5110000000},
	{"Fdo4PNDm9oWyrYvXShD1DRhaBKZTNePaMg", 5105004256},
	{"FZ5XYMsyQMQXpLNVRhdpCfVcDmhdztopZy", 5105000028},
	{"FeT5H5BhEAC6JnVqi3HbhGvvm7UGMVdVEJ", 5105000000},
	{"Fn86gNJtk9zmYpeWAsNjUL3yrubB1Yj11Q", 5105000000},
	{"FcoSyBALMS95ZDGATzhxU72joLmv6w48m8", 5105000000},
	{"Fe4ZTBv8VA6kXcJuuCdYbgkv961MW65so8", 5105000000},
	{"FdGL7K7Rff8HUrNx5MvnnNrhS4zp8e85au", 5105000000},
	{"FsoDCugzihVGeoGs8M4Foh3fbGU1ggobHd", 5105000000},
	{"FfWrDv15Z9i4ggNUPjT6B55DXZgtZVukR3", 5105000000},
	{"Fd47UF7LKxCpCuk5xgh7A2UpJdV72cDBPy", 5100008749},
	{"FpaptnYjE5acittHyDDmBtkLPBwkB8xaS6", 5100003942},
	{"FjNRkxEfrc6u33w4PC1B26b8k3oFmWr2FV", 5100000729},
	{"Fkjcq759jnpCBSonKo4L12NkHa8xTHf2uq", 5100000678},
	{"FiSHzSW1UMGBEFvrbx6Sxzk1RRWqQEoyc7", 5100000367},
	{"FVVnzeYHi6BZR3wdu5AT8AdFNSMsuvtsv6", 5100000072},
	{"FkQoCiUPMpJFECF2WxsRh4M97vxMibSqUd", 5100000000},
	{"Fsz23p867yAy7gigKEcyHxzrC3cw1d719g", 5100000000},
	{"FoDyHFtGbJvxcuHgMCS4jEGARxePpjZu5s", 5100000000},
	{"FprH1nCbuvuJKKJyGo1Jas8fFHZjqo3xxL", 5100000000},
	{"FadU6BknEc26jcEDtg726zUENZCQv1Nh5t", 5100000000},
	{"FsqDWkEUu8UvsskHQv28gGfmWjRkavjokk", 5100000000},
	{"FpZcS4T5vACd1gymTRUeA9qSegUKjWEZc1", 5100000000},
	{"Fp7UyL9qCvSyXEVCXZWzfwaBXJHMi9e81W", 5100000000},
	{"Fmh6kG9U91s1DHmzKhGXU8GQSJYgaxBTn9", 5100000000},
	{"FcSbe6HDZfSUVW4YkkpCoxtRxP6zCP43C5", 5100000000},
	{"FdH8aYSvUF2zmgM2SEYQuTBDWytS9JaHdj", 5100000000},
	{"FfzPWiSpGrh1jYEDqUB1RfxicDD7iDEdUK", 5100000000},
	{"FmVJF9pQ1oVmeaTFhHuPzqvdkEK3FxQW17", 5100000000},
	{"FnARtq18B6ozdnxgFpXE3UX7kf9MjvYg6d", 5100000000},
	{"FZavM99X21GJLW2qDLGE7SXeevuaivQHcx", 5095002236},
	{"FcWrwR4yHo4poZNbeEiB6sjpXrQpRV2MB3", 5095001084},
	{"FocQa8heCaqrwbkkJB3gmiLu4av8PPwR8S", 5095001064},
	{"Fq6Cr21uYktsdCHYVQYuc2zVnN8wKkAjbu", 5095001023},
	{"FbXvpYCGAxodS9mnzLU4SxYW4DzTtkBdTu", 5095000101},
	{"FY6VSXDpTcysFePrC8vERj9zcYQVdPvY5U", 5095000000},
	{"FeNM4qvKinYi5jYzFEMCBkJWrugSNbD8YM", 5095000000},
	{"FZxvf5QtGjBhXqHa7yUAMXzguKuMuQzGjN", 5095000000},
	{"Fh32vfryGgCRBNRYj2NTDJFyne81opJVRK", 5095000000},
	{"Ffp53s3zhKoXk28q2UjfwqrpJcqTVPYpaN", 5095000000},
	{"Fj8BWHXsy546wc5Btk3DrzhnwDHL4exU41", 5095000000},
	{"FqJaN3x9XP9dEUDmUfKTayixiZ3WJ9SChi", 5095000000},
	{"Fca2jUEYkkR5DymmSrHtEXpSjXx3XAebyE", 5095000000},
	{"FnFJ8VtJtZ3zjt4pq1FvaaBWiZ3Azbdh3V", 5095000000},
	{"FYaCYkHJxP6XQM5b3Zat6ftJqiokXsfisN", 5095000000},
	{"FYeSRtNAoVfR8nFWyUUbQYdDuvx6MB346U", 5095000000},
	{"FqV9PvsjvkqRYm2LcR5oNMSwZgCVdtmC4K", 5095000000},
	{"FZNKXvbd3D4JGHs1e6tZWWFbAKwjLptepf", 5095000000},
	{"FkDFFX4oS5UbD7xLfUkwSg43V8aZzKGxrf", 5095000000},
	{"FhJY5jZTXjBF152918X8x5mSydhvPhxMTw", 5095000000},
	{"FfFi7tf95Pk1HXnELEJLzQKpqHads5qJBT", 5095000000},
	{"FiAZTw2NuUkLBVvAkmmBKcfkqRAQCQLff3", 5095000000},
	{"FeUaK8ssCnpynPvejsR7MdoJSawUnjtvNv", 5095000000},
	{"FWJw3vpdFsRXLHQ1Vjq9PJFkpkmqCLemZg", 5095000000},
	{"FshGXu6BXVDLUWpAb1ZftDW8judbKeUeY9", 5095000000},
	{"FXGmz3faqwqQ6Gf6mYcp1YBaAvhZAXH8rY", 5095000000},
	{"Fjtfr1UddqshMKR3cWPde6wKCveqJtJg4o", 5095000000},
	{"Fny2VvdHMiACwEctfwPhqLuXEQKNvBLyLL", 5095000000},
	{"FigpdsTiEACRvzUL2YhpNsCLogQMyiqy3L", 5095000000},
	{"Ff16yiZt4Zfm5odjJm2DtFgisvSqJFA4fL", 5000000883},
	{"FeUNiPcjgLq7JTXuAsTkcVd6XHURy8aeTN", 5000000862},
	{"FdCRUP8S1FQcDVFxwfP77aemNvWa6vGbBk", 5000000000},
	{"FcYMvvY4SnyJo3boWLneMb2wNxEsNS5w5Z", 5000000000},
	{"FjCRCfLCtn1JH52eiHeB762bW6JH3iEmwt", 4999987234},
	{"FYtDtruz5nKdFNXhtJZg38eXbr8aQhbSvc", 4899999295},
	{"FoHfokjH1yMBgcMy8K8q23yFVqRPfJuUdB", 4899997310},
	{"FrGgUm84QkeyhZD1vbuueevbH3d9JFUacV", 4779700000},
	{"FgGCvbF4UEPpkCZwpPVSVtNPJDQAGqYcpS", 4774621365},
	{"Fm5RRUgZF3Q5JoCek6Sj8FEVcFCQEYmYQT", 4693156680},
	{"FrjRP8D3iX2R9RNxA1mBsY2vyvsgRFw9Sm", 4639012817},
	{"Fpd7Sm8QbCE6iR7qwg5wA6VsYJ1JFo1W3Q", 4621487297},
	{"FfSKHB8eKbsbzZNy4EJwu8Npfo5xKDzRto", 4556004713},
	{"Fivy3VP6cKCXpDGGr81qQcMTcmowK8yLqU", 4553708400},
	{"FghoEav2s3nYSDCHX4QBEUi7bL2fHjdkEK", 4506070393},
	{"FYjQ5nw617LxQsH1x3v4CvPtnaTn12PSiZ", 4438123509},
	{"Fght9jjJqe5M4pc97FKQim1Saw1BsjQG9K", 4427325145},
	{"FqhFtqEpsS2r8F6MMPC7Jzs1tCToKEm8mg", 4255203742},
	{"FmviW4KXXnSJSAoWhBrJUjJozEp7x8TYTu", 3989498153},
	{"FWgcKqwECkGaJXwFMxjLwTehjkdAHCv3Ek", 3961851186},
	{"Fmzgw6EcHdze2ZAC5NghNE1YN4gdKXYfwM", 3930792298},
	{"FXxUtqE97EQM31s8Hf44E6e5rHZt9HHsGv", 3899998138},
	{"FYNt7g9q19gJARZvykmZYYM2UAgbsQ2VXM", 3873667164},
	{"FjMjK68rwzWedPXqHHi21fGjaBxR8C7MU8", 3725723592},
	{"Fg8unaEPyqhDsEwURU7Mq91KSirkpkH3W8", 3691530791},
	{"Fb2ZK9xAn1naPJHwuSSTXHu1MbrLs2QK2k", 3521215590},
	{"FmCKGcroF1UAwfqTGCVZWgJCk7KcvKhXKF", 3500519633},
	{"Ft3PFGwFNDSQbWt1yS1BV1FEjHTGoaALht", 3452637195},
	{"FXNhg9HwRwk5hQF2ZeHw3DxvjpyYt5gASJ", 3430664126},
	{"Frr4WSGp8Dh2baVX9Kwrr8acjGRdfHj7Ep", 3416442501},
	{"Fq9CoSR161ZJ6AriyyHQRfFiibwwcCEjxv", 3291757579},
	{"FaGHdSYAJCAdqppNza1BBon5gTj7xZCqz2", 3138902442},
	{"Fp6nHDwuCGmhg1U5TYUXQd3n4CcwJoGxoZ", 2988297449},
	{"FaJ1nd7btSm6esr6R9JmoqhxX95cKMrrPh", 2792524230},
	{"FfdFWr3JFP9ZkDDNCo1bHubfNLB1nFvgog", 2766694770},
	{"FfaCt15QrQhYiqwVvkKHjgWCn1BC6kc1QU", 2749029428},
	{"Fb4AgTJxAQhs3XJBYRey8ENAjQptLHKNeR", 2720306151},
	{"Fa98zqvUgdpZd8s38Keqc692ENw3t73XLa", 2695000000},
	{"FsYTpq4cBMQJprJVREFRxCRDWNKh9icR59", 2615431612},
	{"FmEmih7pxFUUYPVBWYgxv5KuVZAVW9oegH", 2610003840},
	{"FktfVJcdLGE2G7dnMcFqE4a7mJ7WDEZE5B", 2610003512},
	{"FiSKTdvbhM8HQX1CpTuC2e3q28jLSJhksL", 2610000000},
	{"Fa9aos2LWJj2Wz2fNH3WqFbZsL8jgMLUxz", 2606894531},
	{"FpVxYHrsKNhkeN6LVRfj4vrqJHTts7Bvu8", 2605000000},
	{"FkYKfBsNturcYbPM77v5NPTwEmoH8Zogwc", 2605000000},
	{"FknfYXfyahiXvpNPEG7r5UJaUi4FMczU9W", 2605000000},
	{"FsnpEBXzjhnegHmLHDFPjvM9hftTXKAx2B", 2600000561},
	{"FYbpPpgoUyTKaFKCikQXsPqNPaT6f4pje5", 2600000000},
	{"FbGpSwCYgJSMdpHnGsVRBjmf6pRHUK7Z7Q", 2600000000},
	{"Fgs1HWwE5fQM861k9cNqmqwKvrpVPkDtZn", 2600000000},
	{"FqXH5ChWgJHZZkWvx2PdiaMwQEq9iKHN8j", 2600000000},
	{"FWN3gDZSgtQ8xuFrAUvzx6Urz3jpoJZruj", 2600000000},
	{"FkukJdm65sYc6wbpoa1VW3khxXwdQ25LTA", 2600000000},
	{"FhffENYJuiqSVHbsUTeC2u9LTkwxLsDRyo", 2600000000},
	{"FsExPKsXCi9XMHpQenwgaXi2g1AojKPcjh", 2600000000},
	{"FqzdnY28Q12P4aE7YGH2E6ebhHPRUiRy84", 2600000000},
	{"Fcxj1Sj9MrgwsZyZx5zUpJ7Ec5LBox5MAT", 2600000000},
	{"FszMmEPVcdZU3LBm8ShuAhUHSuTMETKCZo", 2600000000},
	{"FYyHJNgZLV1zPSrRtS77JsTjtWXtERAAHz", 2600000000},
	{"FZWMTSedQm4F2AJVPbjdzgqM2e4E1cz2eT", 2600000000},
	{"FVojPfdnQwfwwokXoMTTZE4RJuoCYgZ72w", 2595003626},
	{"FbbZBF5pXuw3gnR5uHcBgPqCxiyxDYD5LC", 2595000457},
	{"FfHbQUaD4ypUQjToBnAtBQAmrzunux3F8W", 2595000281},
	{"Fr48wahNMG2fHjGNUHzrU6Ux6s4A3gKbBz", 2595000194},
	{"FhZnqR3wsGvF3th52gqHS1a5WFGvRUGzKL", 2595000000},
	{"Fmts9BVX9K4YjnbvL9Kxqm1aGeTZFAUhSe", 2595000000},
	{"Fk4oh5cBF4adhnn8xyoyDPnTEXRWd8D5xk", 2595000000},
	{"FbwpMd5eDEmncZKn2FZEyj7UP3ULbuhnB9", 2595000000},
	{"FdMBFE5nDMh8qJtPwBgb9mEcLKXWcdr6b9", 2595000000},
	{"FkKtVf81JpxN878Fovh5Ji56dy7o2FtEmD", 2595000000},
	{"FtDWWZdxqywZsJMWjd9i8tdTvz1S58ZZdJ", 2595000000},
	{"FpzLPHnB5ToqFX7Pp3oJ3KTVDALxpjmrHb", 2595000000},
	{"Fgh7JXqk4M8gcHWWhWCVNmAekkcrhMMdtb", 2595000000},
	{"FbHT2xyBMRkV4hrszjNfw8GcFkwkkDgG2t", 2595000000},
	{"FrhsuCqsrxjKPUgihWKgDBFURZL7iuiUhA", 2595000000},
	{"FZXz43DZ7gXeRhQWZbrro8LDZLyfPtQJXg", 2595000000},
	{"FfiXXkPzXLu45upq2QFnnnFSZW36vgQ2Bn", 2595000000},
	{"FqjzZHwaVuMD5Ywg1cpE88Dvp9dVUmyVH8", 2595000000},
	{"FZ2uC473EBKWw9JwHsg6k6CKAUBtzA3kwD", 2595000000},
	{"FnuBAKViWBgJweiy8Nr5kVB5LuQMAM9fCp", 2595000000},
	{"Fa9mdw7eHBZwhZ6pgMFvq1rCotn9qAjrYx", 2595000000},
	{"FYjkoxkLmfZKX4jQNnB8KDD3rNuLkW4mZT", 2595000000},
	{"FknCNyzi1vkAKUKTg8FvTncoDxmvFgDTJN", 2595000000},
	{"FYCycab5mHW2KAEvy3smt4nnB9KZWA5Dov", 2595000000},
	{"FsKcJHcc9VUJvVBhmhtb8dchucsJ5xscWR", 2595000000},
	{"FjVTuYYBzDLeWuvmPe4vzHrTEihEMHMNRM", 2595000000},
	{"FpVWLm7yZ8yRVP19S8YYeVhTMGkBLMdP4J", 2505000000},
	{"FdkapFiDGWrNzLFVk4xxSHbfMJfQ48xhpB", 2500001555},
	{"FZjiZ6ZWnCQFhBTZB8DgYVugnkNKHggegn", 2500000887},
	{"FZMDpAveYcBcCS1LPuwFQn2fRDvKoDmqs4", 2500000545},
	{"FkJ2BGMEAxYm6KGb3yy3yDyu7VgFRzg4tA", 2500000011},
	{"Fdt7VvHf797mRc47Vaie18z4BmiqafJrdW", 2500000000},
	{"FkFWu7CPnKsUX4cN1jJ61K44B13UKjRDRi", 2500000000},
	{"FWGfri8HD9WukhSADiVEcSm6Lc6sZiJuFj", 2500000000},
	{"FpqJyHrfkXta92d7gxX6oYXoSZ2zyDTrgJ", 2500000000},
	{"FZCnwayXdmrRJ7h5rWRt2EcyuuBBx6Ypex", 2500000000},
	{"Fb3a3UpYXtku6oMt1pH4brdMyLjiBm1qCV", 2500000000},
	{"FdjfRzeryUU2q6ijGAjKM52ChXHEbHnoTX", 2500000000},
	{"FqLoxopaZHiFjqo1fbpfmo8FzvyV4idYFz", 2500000000},
	{"FtWB4a2cFuViMpqJLw9uH5Y3AC714dD3ca", 2500000000},
	{"Fk3unM5t9wmXPXQbTnntM3TwpmQx6qdJEa", 2500000000},
	{"FjSLZTntdhRFA7KjR57dakvzN6hEN2MAHZ", 2500000000},
	{"FbCQaDDY1KLVxhvFz1shYgtaTemrPrRPE4", 2500000000},
	{"Feg93NQ8rQf33PmGusb8HNs7S5g9vWTu9v", 2499999677},
	{"Fq1U2QfvhHDXYq7Lgsq9w9GzqmtpT4UH85", 2499907241},
	{"FeSv7SEWfHEC1BFdJ1m7KPPoiM38TdSLnb", 2499846291},
	{"FpnP6fvpZJVvV2SU9tAswcoqJnsrmnG92Q", 2499670671},
	{"FpfBzZZdD7K3hTAEgi7qs8v7kUXddR1WAe", 2498940065},
	{"Fk9E1GJ5JTtHMsjyiniFRF9ic89zKG6Dby", 2498353678},
	{"FeGCU8oKMNbq1LJwoeD2FaHbWhnkBnY4hT", 2495393678},
	{"Fnu5drCGJ1yRtJSXTHZ358Zv9Uey6cEgGP", 2493402236},
	{"Fqpj57PP4fNXCkYbwnBFuKnNppoq127SAW", 2399990236},
	{"FiLc4aUxcwcG73EJYWKeiCLFZv5EcQWBrt", 2382150000},
	{"FiwXH5gNBT4nXLaUKSvde2q4RsUGs5zPJE", 2319059037},
	{"FoL5VubVnqNZbkYxoehy19JQBXG6q2sXLV", 2248961769},
	{"FkXo1YqjZFje28nY4rfrJRYFaLEucbgHRz", 2230942688},
	{"FVLTkKN8ihpapR526V19wJqauudT2R72zV", 2204476836},
	{"FoYhpxckzYX7i44U25rWxs31Uzv7LdNHi8", 2184551545},
	{"FfL5gYTH7z1vTLJtgCxW1B1BGNjvv8pxqe", 2133807720},
	{"FeekQo9SzMz4hjjsWsu2jNmghRcxfYqQqa", 2118046068},
	{"FVxWhWugq6fanmJyyyPVS92XggvhwnR7GP", 2099999521},
	{"Fp7bhgwgvxervst3da1aQwiXMU3G3MiYjz", 2099999521},
	{"Fmz3PertrVMF8TNjU2j4SxsePkBKQtKPE7", 2081591654},
	{"FdhbrsufpcL5nrZAr19tiXFR44mkoueF4i", 1965071582},
	{"FgbtFkmS5vBhqurMkCmYMmva1kjF8gSFGo", 1906712247},
	{"FoWxERSSxyw4gB7neqBkDeteyVV5vnWXob", 1878742576},
	{"FfAZAzsZEiNNSQLMosN3Jc6J5grC86ihrd", 1812610000},
	{"FdSGEtP1VEVquk1GypWyyjtYaaeaf6jKqG", 1800000000},
	{"FnwBSH2KNDDewsATpb28aLyZ8fimGox44h", 1750940027},
	{"FrdGutAgByMVhGsC3bSqKUJQ4C1AWWpyJ8", 1669844560},
	{"FZk9VHP4Y9H81jpgYUPQetVPvQrvfwAcYj", 1644570493},
	{"FpAFsEc6Tu9NtH1v1xwnV6xFULgRXNztoK", 1611187316},
	{"FeYhFqC2i5EoskXMsRE8Dzx5MK8bAqUdMQ", 1566825598},
	{"FsXSzCUmbrxTuMvX8tTFrYymkpgXz3TPPP", 1550250470},
	{"FkpHjpafCBw4Fquxx2ZBpsixYtAHwCpEk2", 1534846168},
	{"FtHSGumUNAnRoEpkJDHbvcD5xXNnQBwP9h", 1480169351},
	{"FpAT3QphDt6msSmzVJvmpzGx4kaXbwyt3n", 1471956688},
	{"FbNjsgFNLv4p7F2BLx5SZ4R2SWP6VZyzvJ", 1457594075},
	{"FiuHSMVg4A217T1YfzGQfdAHC21Xs3zTZC", 1410164568},
	{"FVUVDggagqoB8R8KNGtCXD1woLCxdSnWKe", 1406134041},
	{"Fp5LiUcx9UtnvWNhofBPGk8xkbG2gw1hTk", 1397767264},
	{"FWizXzZHa8Bsthmc3AdaDN4hW5gTuPv9Ei", 1353909891},
	{"FZhfEBaHyGk1RYJns599omGAZKY8VUpA1x", 1333085214},
	{"FdHwG2vfmzyCHrPVJ6SeLJyzvHaGwbXmpK", 1312962065},
	{"Frhkhac6K45udk2rpEDbZeYXU4QZLFzthj", 1308812425},
	{"FjzSZocBCveEV83GNpS48TRxCBqwJpqQBr", 1274529605},
	{"FWWy6bcASem3sBYSaeUmW8rqHp6QZ1H9um", 1260548203},
	{"Fg3epUCLhgQA1szd9VvmtUGnp7ZXfvT87N", 1252342072},
	{"FbhXkcRFbubkgkVFoyXWreEmyCrGVkHZ4p", 1245391114},
	{"FrW7YLhJVVdr5CeL5vmV9PmBNN5xrZ97vK", 1203724977},
	{"FohR5L9EiYnYXz3TBS33MwBp7SEKDfNA2A", 1189414196},
	{"FYB6H3R4GqiKvzjkCPdFWkKxHCL5ZX4M6p", 1186903236},
	{"FdkoqWvMdp668KP8AtJXmPZ9FZMcKAvsH6", 1174227863},
	{"FW7Dr73mst4jhuTNqKY9EsCbm73ZDqUXYR", 1148630833},
	{"FfPvQNMFYGkPFGy68qRYVkxybfarpsDQ65", 1146145995},
	{"Fjc8kkxLwFz4S3e5jB9M1eFXhjyNgEAyeS", 1129107833},
	{"FbuhTw16YwzrCWc7Se9TYps8nVqa3mUsFi", 1120616289},
	{"FXskqUgD2Z74Sf5KjwExZF6ABkx4yvsBSp", 1116784496},
	{"FpA6zHDoavSqXhGgAdSWLwRopcSHbRY4h7", 1111659870},
	{"FrMj7dWNRSKHhpccDLDkvHMBE5CC512bQn", 1099999521},
	{"FX8cnLWsjpXL49CqX1miGeZwf5kpGqzACg", 1097000000},
	{"FrdT1VShuMfBeHBcQbbQNjH258W9214MGj", 1090320000},
	{"FedGoXv7H1pnTB8MyCSn4nANztizuesirj", 1086917243},
	{"FjbPbVYShyv9fziEMB92houNi4F2atiRiY", 1065602504},
	{"Fp2W8bqjv5aaJGKuQVtNdCvCPik71fD9Ym", 1063738967},
	{"Fft3UVnuEDfcK1DdjCAVt2q6C1cQ5g1yed", 1058754532},
	{"FspFoj3xMYWLRiJc8WCfCYx27kn9MBymG6", 1054021851},
	{"Fi8FbsP8LDecWQqu1JqoNHYu9KftsiSnNC", 1046470000},
	{"FY5GcJV6WaDFX79iYWUyris88hyJv4MofF", 1046336765},
	{"FVgUX3rrpyK3kNhBkiyDFiLvb3s4EQj44m", 1026843517},
	{"Fg2bNBfCmrSVkV3fHTrDJ8kAdY8LnfhVYJ", 1018219749},
	{"FmEDxbm8ecmPio5eCKHojk6hqd1tLms4FB", 1005491545},
	{"Fdm8ZDEH3YjMqp8VryN4tKvTci9MXdvWjZ", 1002480324},
	{"FbH34v6vvb2QYWFwb9geNYsK45o4Yan7qR", 1002331791},
	{"Fj5KnGXdgPuH7RL27rMeYaWVYRDSVRr4p6", 1001955906},
	{"FZ1CYTUjSBCpaaDvmVCTMa54eXjFSWWcAH", 1001868817},
	{"FcmjGFJF1fLb3ihnMzBaYjKrYwus6mWLfo", 1000000000},
	{"Fruj3eqErLFzFQYK9x31PwFnGKJXHJ9Zzj", 1000000000},
	{"FruKwKj7D6YFBxWZKZjYyPdcMxUGcDVTvj", 999997658},
	{"FpTaw8AQdZg7kY2xsaEZNkWcMrUXJc9zFw", 936002795},
	{"FZYWdP6UfZraG2GVQhCwDfFr4J97mgdr8Y", 861033490},
	{"FZTnYxT4twdbYi5HMFzz15mRPY58jJUdGw", 831022680},
	{"FrU4FHcZgMYAfmojWytYk6zDB5CksLYJ2Q", 769505542},
	{"FXefjsjWJkG4THAWybj3WEUCkBwCUsYR7E", 743832460},
	{"FkUFhXfkqKtqcWLJjkmW9mvaUaEQstApex", 714373773},
	{"FfKC6bTNT6q3PvacNRLoRzAzeB2jacQCVU", 707669290},
	{"FdxuBMdYoEJQe8YwD2Vp5GUNn9rdJfw5S7", 706470535},
	{"FiFK47H8BjKpjTbvykcnbaDYJZ3zPrScWV", 662152651},
	{"FkXh4PkAaFhtaXRKXHD4ELRoZpUWnGC88x", 608846001},
	{"Fi8Lu5eXJ9PsCYzgto61bi6H9yfV2F3AQE", 605007461},
	{"FfZ2TRNwmdCG6BHnQKk3aHjEQEZianDoNj", 579981026},
	{"FhwynS7UD3Z9dePEfi7JeHpedevpza4EQn", 519300772},
	{"FWjDxGGGuA8ToiFf11qT94DL4gVR8E1Fcp", 518004157},
	{"FVJZVTHGQAbao3dKUu9vF1hGmeSJREdt6o", 505970000},
	{"FpW5im781V72eA76fBNUNnLB9YMkeBFNcg", 500000000},
	{"FW8jyL1rtmvPV3VAATAoSLhWfAAs4dGewv", 500000000},
	{"FgT3LhprkS6PadTLfJFVcAMWDnSQGpjhtj", 500000000},
	{"Fg5xTQBmyEfMD6BhHoKpsQem5uw8UD15Pd", 497859821},
	{"FWPnHC5QMZx976NNvV6TFE2jkADyVhtVKV", 427351785},
	{"Fokbobhgsd6jJoMC4ndTcs2xuTMQdFMvCj", 391120000},
	{"FfPxjS2RuodJLGQBAjjcMUxPQiRiVPReML", 382790000},
	{"FeinDdxE86wEk3VmVr87AiJpBaYEJKnuuj", 375000282},
	{"FoJvJz6hdd6MLocod8KUDoSLC6uTK1kPuq", 375000195},
	{"FjTZqnbxgs6NLBNGFrXDcpD21v5dLYSKar", 375000170},
	{"FgSGdvUd8b4mPYS65BdHbPpJRShzVUZKPY", 375000000},
	{"Fm8NjsUxD41BUSaYcMzZ2Hf6MVgP3dXVmV", 375000000},
	{"FXdueJjzMuowDFitBZ6Zk54gqRgugE3yKb", 373389762},
	{"FbtWonkv8XMLs7qwJkQEX5WPk7PC78s9aE", 355627660},
	{"FkoG7DQcYwVesVJtQ27WosV86kRNX3cQBs", 343062519},
	{"FeLQDcxLQUZ4pHoNNuaBAzRerybgvh2RUn", 317298246},
	{"FVdqxj3Y2udVAaV93VzKpRUP5bFoNkVEg8", 305594254},
	{"FmB8dTTvFrofFjsjETtNgEohiEBFXvayFw", 300000000},
	{"Foptqeqs8cH4vLdviWoF4TKnnVzMc386ed", 294164377},
	{"FdCy5HafBCP4MhkrgcrF2XF2yHhVJrHdL7", 292830000},
	{"FrQ8L4VZvwSTv79yCvNgVXryn2cuePkoq8", 272324696},
	{"Fq2i7yMXpQdUUrvWHt4h5Zw5Cbp5ikXAJ8", 251540000},
	{"FoULx2XUQ7mDHGZUhE957nJcVUm1x7dDvs", 244604159},
	{"Fnu9RTcsqiZ9fHYJV7DReNLcR8ouwy7qAu", 240063779},
	{"FkPNgFX6RqzChwXZqLvWcrdTriUPikEpVW", 224999626},
	{"FoqLjfbwrnUSaquF8VNnNCxRnLYkLcCgXk", 219443623},
	{"Fer2mQ63i6chVy7YUuTWM6snGtgB6p5ybk", 213550000},
	{"FYzjzLAh5S7ZHRzTcEAcSfnFAypmUUeW1f", 213065007},
	{"FoqmF547ERAW6nZf4NPpL3uim7EdaweMor", 206135061},
	{"FZz2fn2VHxMF3oq8oKrz8KjJyWEiknrHCF", 200000000},
	{"FZEXn4DZHUx7QKwmR274PSk1UqBY45a8Pg", 199999521},
	{"FkzkMraJnuYQBMAmWNLuqqCowRTMxf89Mw", 199995039},
	{"Ft7gAbmRmVKkTTmZAJCqvc7bmw5hoEcQQv", 199972982},
	{"FhZ9E1Ni17S6Z9wrDuD4zAFRJeNCicU3Sw", 187503923},
	{"FXJuGiRCWmUaoUzXiWjHaTkN95CMS94Kyw", 187500853},
	{"FfXpSaARpEovCPu8yNw5W5CcYkh3bi6KV6", 187500000},
	{"Fb7KQZ9TYbCL2C736vEvHWSZ1e321bqqG5", 187500000},
	{"Ff51RLBRMRxNMvdCH1VAEsRRz7jRMAvYPz", 187500000},
	{"FrSzZozT15fHcHWteycRS2UiCjERs8QExE", 187500000},
	{"FfsMKoCUT9jtV8VivyoVcR5onRUmD9jqTv", 187500000},
	{"FWFt2CZS5V6VfjppGnAy2ZqN99oSCmgCP2", 187500000},
	{"FtThbTeBdbj3zCSo8yK4HChFSaanKw3Fog", 187500000},
	{"FeMpxET1sZLczHAupDSbyMsW83QVKfFY9u", 187500000},
	{"FdkUgALzwoeYvb6UDrXTiQ12fn5x7zj7aK", 187500000},
	{"Fo48q8R3boLLtjXzHrhuahcKN85iuYeCbH", 187500000},
	{"FqhGsLQkqSWmEeCVizgfjhAgysuU5qWdh2", 187497296},
	{"FsRMkRfezFTd1j22Ct8fd4UzvX5xTJpoMe", 180006712},
	{"FnjTbPuM19bTm2AS6bAALBJZg1r9nxLccH", 178991171},
	{"FePMoTeVJns6izSt8jK6vsfG29X8KVnUBA", 177870000},
	{"FeZK6m6wJhm9md4qPJFiJ2heDZJK4EgnDr", 176805248},
	{"FWJESDNRd6fGZRZ2pCWXdQXX838VkNzRNm", 169999774},
	{"FfxCB4of2wkyowygz18jLp4J7MWQaL9Ar6", 169999774},
	{"FaJDzkgdfHGkkUXenTvUaYEVyRyMkCwVXh", 169999774},
	{"FZz2NsueKMVZcjsAsYUBs7CauJHXoMiTJK", 165771302},
	{"Fgysq39QtSGgZ3q2bxe1QdWRGv6pFSuzn1", 157917087},
	{"FbS7jEEuUxmHgGbEmefqsn2MTrN4Xdx7Ny", 112499774},
	{"FZGo8vxYxBB4qkowtN49oVtzrb8NHBfsqt", 112499756},
	{"FsYQv1Crv2Sjv2rjCuWyfWorG2fRQKzpqB", 112498828},
	{"FYgGN81q2cpB3QgRHtx5mmhCE5NvEGzNiJ", 105800754},
	{"Fh9gdC2GpCgHHhNVNyxLhT3RjdForPB7GB", 105000000},
	{"FjNcjwLBcDtdyveBMBdjYGUFfXje5jWDkh", 105000000},
	{"FdMNbQJr7Xu2WnCZEtBckEoDNz5WSqdY1c", 105000000},
	{"FctpPbrhnsgRBd5F7QwJoPNM9J7HvL4kt5", 103540000},
	{"FbrfbP75XQjCEQdWy9qPg6Ky6DsuKmcSn4", 100154185},
	{"FVcA1T5wqpVnDbMMVmU1ngyUSDUHDSwmRy", 100000001},
	{"FXwALS64A5nA5QHQPdh6zEVnBwNTVue5cE", 100000001},
	{"FbMFLjR7sUuDbVqDnjDCSU3nxabdvDmKP3", 100000001},
	{"FbY7oYcXEfxA9p1tVRao5VGZFixVA8LYPq", 100000001},
	{"Fdh2fqKRWG3jgvD7VjcaJYffbJKU2b7kMp", 100000001},
	{"Fe5pjuVAqYBCH5xuqadx9629MSSmtoH18S", 100000001},
	{"FesR6TPCo7TvTendvAPoFYgWyJLzumz7u2", 100000001},
	{"FiX5vNzm3UvCZeRMT4NkET1D5ChdFEQBCG", 100000001},
	{"FkL8q26n26BqWo4sxhPamCk4yZTbwu5e1L", 100000001},
	{"FocYiSB8GqgTppSB3gbkCKSsCbAsBS8HgL", 100000001},
	{"Fp5DG5ZDGHR43aw8oHB5S3GhTzKvT5UGv1", 100000001},
	{"FgeDNZnqV5yLcoQH5zhMuB7nSXvxgWuYRk", 100000000},
	{"FhBELkngfLWwuBXW8K3c6X3RvPgThLyumP", 100000000},
	{"FnaXr9v8UM2BUZ3k6epGkoUqrY3WqdgawL", 100000000},
	{"FbrgjEXontVVfpPk5AbPjvorBxbuXd8c6n", 99999774},
	{"FdGhjxkNt4mgnJ7YPXvbz6p49BqHZjRavi", 99999774},
	{"FkbHkvxy7nZtbRFY4JMNeKeuphEXrSUc8s", 99999521},
	{"Frd2oLDp2rGoyyL5Yi4tFZ5tPi6oGpJhzL", 99999147},
	{"FVwatakS3E9Ez6AFgTcZKQ4rhw2UffNexF", 99997527},
	{"Fgwc1ruy7xdbMBP1vNJ9tHyMfqF1XSV4EQ", 99984533},
	{"Fpvj9EdgzTbqVYYpSedoqiztjpSjuYYqRV", 99964797},
	{"Fgeksxo34CGpmwPLCR8vSr2CzTEqaSJbpG", 95000000},
	{"FpzfuCGuNzsfLz9FR1XqUtfgRduVs35Yi9", 95000000},
	{"Fcoe35oDnZKp2pgn1iyLa8EAfEKjvFiWt2", 95000000},
	{"Fkd7LEqxLPp2bTDJESSzbkNCTypz9jiWkT", 95000000},
	{"FsrWyAEhet6E2seKESH95KQw8oxB5AJ9FN", 95000000},
	{"FigRo1XhbDkjub2oUbVgPGDEH7nr4LCMrr", 95000000},
	{"FYe9ygFfrcUBtuWmaCL13PsQmfKXsWcbaG", 95000000},
	{"FVqrPXZf7qQbPKFEL1HdzCYidAKyHARxtU", 95000000},
	{"FeuhWtMX3YFSHUkHLJmxUBAWhjMuDYaS5D", 95000000},
	{"FfWzvuCi7iczShKr5TJtscHAJpdgmWUJjF", 95000000},
	{"FqYtF2j3Cv7XFBpsDkkXCWvdajujXt2USM", 95000000},
	{"FXKf45ZFNKNByXNT6DUiyeQqDCvBXza7vL", 92330000},
	{"FWweHYsKjAuwD3ibR2wyfwZ22xZdgr8GED", 91831046},
	{"FaxgY3KAk7VJNzV8oSC7sWZ5Bptad2nrru", 90848572},
	{"Fbr1Q7Cup1LbmK1yLRTnzQvKSRpXFi6KV3", 90675405},
	{"FsFFnwLLvX6dvvZsFRWk5BeePb83qQhvvv", 85065269},
	{"ForYQNFU1iPcRVrm9C9B6NbxL33HBTineZ", 82105300},
	{"FWRRv2QDcRH5r6RMMyHaHTBQtEDkR7w73S", 75693000},
	{"FWSP9jbLLvLsH4BKadYKqNZHzzYRPfpMrw", 75004891},
	{"Fensw9SADVKr5TUwGGzXcEUkGvWZmk9DuU", 61596308},
	{"FXogV3S7oTrMTMcp8eBJ5gzLmRfjNEn8oP", 61210569},
	{"Fh4f6yNbPZNUkVKkTtB27UGLk1U4Z2oYbd", 57013700},
	{"FabR4vUfsc1fF97DHG8HitCN7orhAujxEi", 53850000},
	{"FghuEbQYV2hoAqjt8WWuWDWNFaB8Utsyeg", 50062225},
	{"FXvPv4z8gMast6SE2bHfn5wxc1QwgByi9a", 45100000},
	{"Fc93cmUyjnWeE2pDw8BnqGUKWWNJiDtuj2", 43994243},
	{"FaMV1pHNYMaFLgVqYMh3D3ihgV7NHqcq4b", 42826955},
	{"FVdzLdWnw6ragQnKGdyFCqx6q9XMubKH3v", 40358311},
	{"FiVfkEKbsFcZBATK6XLZ64KSe1QDtTUTLD", 40000000},
	{"Fm2nALt4tCpGPb1cy89DkUa38kaBPiMASi", 40000000},
	{"Fii76Q3C666fiErH7Mg1PJPGcJubsVAUCT", 40000000},
	{"FVXQy6zRugWd4RoCgStXkE4mHov8AioV1c", 38461500},
	{"FmuRRzFPbaS9mJKjSfva6qjhNPcks1TLYn", 38181800},
	{"Fb8qejZpoiifckK9XkCWCZVvDXTxfwd17K", 34659950},
	{"FquzCPg1jF2gA8D5LsNpwRQWLdNC4LhDUX", 33380000},
	{"FYyxFdEoQmhKwTf4puZEQhX3RnhGgdRaia", 30740000},
	{"Fpqp9yESGcwE7PwDvBQ2akiVg7dXbvgBr4", 29806681},
	{"FXDE1JtR8bdFTzuz5Rp7RSKcE7ezDsTsJf", 29434474},
	{"Fn9exDLJPezrzzsxexkaauonjVeHbDwPdG", 28038879},
	{"FfqAsV6mSNVx4QEer5ZqVkT19upnmhLgm1", 24508008},
	{"FWmX8chMuPtjKhYAHgwhsnreLA5kfYkE4C", 22845291},
	{"FZjdNzAtMxyEntAez2SFTxw3SnHjdkdZsH", 19964160},
	{"Fcc3J61kRAjVGnTX1xHGqEHSTLpwyNQpMk", 18997078},
	{"Fj8wKftm2hu25KgiXBxeSWZAznSyFALiKq", 18896660},
	{"FfpL9xhrMMkBt6VnxbGgNwULYeZTXD9niR", 17158342},
	{"FevSE1NVWhfhvuPiSeoJobYW1DaHDpJfdt", 14365911},
	{"FejAdfPDpng7yTDXVwvdWf1VbrELtDgyHL", 14027138},
	{"FayJL9fpr1ZggoHLM6FgQZLswG4QwpN4gS", 13730353},
	{"FdweFEjFHEHMvFqipYT9gEBAWHnTkwhjTa", 13210000},
	{"Fd2qBwYPVjqKCwLjtBCS2f7y4AhVUZr3FG", 12405000},
	{"FobpEzLzj8SjQ89HViuwzDjhxnw388T9Wx", 11602400},
	{"Fq9jPB8H4V2jzCwTxzvUC4qxuzaNfNrcCh", 10399525},
	{"FieWy8TxGNCjoXUokCYxhoZ32tbJ9HMJzy", 10254466},
	{"FasNYPq4fnQ4TUF1d94nQDchhuYXHMxZPa", 10001722},
	{"FnwQdgdqXTSAUubwdLo2CoYKDYvBS8u1i7", 10000000},
	{"FmHCuizPwZuGRR3xS3nPDLjrsjRVwK4hvF", 8195497},
	{"Fkqud4KgQBv8NJQaaaDw3YUV6MQa2ka8Jp", 6207969},
	{"Fi9LtSVqJsgGuFJDE7y7QSfDdVC4RtdiUM", 5501236},
	{"Fj3Dzj1knxmv4wFALkWzdRhG9zTQPdnz5S", 5081588},
	{"FppmcvFyqSmwtQfhaCRA9vqUoAsTnYqwm8", 5000000},
	{"FdBoBf2oC9ErTXHWPBwafbbpGUZkDFaNMo", 5000000},
	{"Fsv8yx1e6dFuqKVxfBPfXouTHJh9F26N5Q", 3923045},
	{"FZ4WLdaUM4xmi9Jpt1iWrMHhpsMR5pgtPT", 3595743},
	{"FqHff8PuuTQJhdzDnjM9XSUNVnPqsd8qpp", 3470390},
	{"FdF5DELEwhyFCviSeHEdxZHJ5UcJi4zJb4", 3241459},
	{"FYkRKfSk29tyuzpdUBbGeBhKGjmQChdPcj", 3130815},
	{"FazyYxAcqWmtD6DMy8uq5ACzkVnX3xDDbP", 2908070},
	{"FWUAeFx3WqRAuReEp6PXdgDEjVPd8wzniw", 2665655},
	{"FtJh9rGfA2xnWeYdXmY3k1WR9apPvn9sKr", 2609104},
	{"FmP5VXhg6Pc6HwHyfECn7PF54xiFBFphLP", 2346605},
	{"FcioJESaXsHSXbbZK5KJdxr1yfE48rghsP", 2005530},
	{"FmmkAe5cQvJ66RuMzKeo1ZB8kevGvyrQi7", 2000000},
	{"FXRdNckMLYRZwhreeaQCHrSQ4oEL8sFrCr", 1839575},
	{"FhR9Hz4x1VHRoMv7XdbmivioXx7F6yvVGb", 1829533},
	{"FmiZVdc3LoQ2GCbv97uPqStBN4eYKddyRW", 1822529},
	{"FZmMxw2WriFLYHThACG7EDNnmXwjDqPHJY", 1807517},
	{"FoFbwwC2jDM2d9vmhBtXmMCBaDbLppoWFj", 1791202},
	{"Fa7Ni8KuE4NkdmwR4LUqtAMv65TXoqu6nR", 1790913},
	{"FfUJfhY5unbf4CUob2E2e7Ynj5FGp2MgyQ", 1758911},
	{"FjEhgjs4kL8v1c1xmtEoGD3VG673jYiabb", 1750000},
	{"FeynG6q9URQRGeGfMDcwAczgC9VzPqA4vy", 1742006},
	{"FnjR8brmxj5vyh4MPg8CCXiicx3azzb33U", 1600816},
	{"Faj397VB53Tms18oJxorcBm9X8NqH5QspX", 1578187},
	{"FpFSiqQYDxtN4tGjijDDbDvjXyPSPgkAzE", 1550953},
	{"FgBkUpTHdKk1XpCKr6QTh2ikWyPndkEvbk", 1466691},
	{"Fac9BhqgF77HZ8ZMQ59jx6a5BNM5afk6nv", 1450260},
	{"FdiuFBbwhNaqGwo178YBXeULLdxjquvdTw", 1392099},
	{"FfrYmabaGGbbSvwArgG5ByVyRVrrPiPZQb", 1360452},
	{"FfgZjVqgFFeRW8KkJJr87sRBbc5HWQwS5Q", 1337134},
	{"Fh59UnsUvmcCg5CmZ1Z1kYHFG9cA2cyFmw", 1291177},
	{"FjkL6biXJXbMMcLuZZEXXwnztwqToFGZA3", 1242518},
	{"FhJCiVtT3SQoPB4qnjLRKPAeyeibNbD5SK", 1233895},
	{"FacHUyCATRXRWvj2ERmjLnku4zY3NXxqmc", 1215634},
	{"Feu1xpTo5EdoMX6RcG2NY1n4YHDfuYQRDY", 1187356},
	{"FZHKoEkNojQuS3mVq4eSBnizfKUi2xGrcs", 1147129},
	{"FqGWn6JaztFJ9waYwL2FAkJML8bGStqSzz", 1134612},
	{"Fexiygggx2SuA57YtG33h5U6h2ybM5ApLA", 1133469},
	{"Fh9JMCFkh5JkRvfYTHyhkPp7D5ozqVq326", 1098483},
	{"FerTPzmVURsjsr1JdKLkjDn8yQJYed8CL3", 1081118},
	{"FX792v4Z42MWCvifMvLHa7U1mEPd9oVYTf", 1074101},
	{"FpVvsEhto7T9URqAz86fyYDyjLExNUcSjd", 1019738},
	{"ForLgobW7n4jH8jU6TM3sZKYpQ61Xrzi7m", 1017785},
	{"Fs6qGzxdFrhdzUpyGgApnz4H9AVmwnKD2h", 1017445},
	{"FmQd7ENKQZHvff93NWCWsbhVMtjX1xmMVZ", 1017415},
	{"FkKFNWAF1m6DYG5jRRpzCmqUVMLxxyw8G5", 1015732},
	{"FamZx9HkpRwF1uFRWuKwhW75zqLaioszdu", 1012483},
	{"Fg9iVgQoAZ9oKvNiuBbZCttcEmHmsT7Pj4", 1011788},
	{"Fkfqv2zyHLxp51zH4HAKwJg9gcPqUEecNp", 1011189},
	{"Frvr8XZhJiXej7LWrt1JpTj3YYrx4s2uo8", 1001668},
	{"FiJueMp7rbUH1HgsBMND6mvC3SvedWFCUx", 998354},
	{"FfB8rX1xP2KV2LTMSpzifYHXcJWhojJg8H", 997656},
	{"FqTuRknDgpXZvveH2GVvbT5j2TCqrWcEzH", 997536},
	{"FnaNGbcyhi8gbbKNAWzCquxV8mUssGSBbg", 994165},
	{"Fmdaj7CS1CRohukFnW6sPQ73b2kd8PhZWv", 992395},
	{"FjgqpsPC3FvpvbnsQXiVjpjL8w17qSTjuR", 992392},
	{"FqM82bwjjbbnpppT6RdvcLb5BqzJajYGbM", 987144},
	{"FZMGZ8SYJh9EdhmVqVNchEKSfiCN5RivXc", 975840},
	{"Fhb5mTTNVkBhEUBwmgybiFxxGJVR3VBHDh", 969794},
	{"FhvKCJquMV9wcUFH79jZU7Aukp4iFeT64M", 952309},
	{"FpLYjL83jXLtmBvuYKXU5kzdaH46TWvxa2", 922054},
	{"FtRGKE9ZJGM74v8p4y2KcZFk5kmBug1Ko4", 798780},
	{"FmYhTRWm4DhtJCHREAM5sytKj5Tqp1skfP", 737783},
	{"FsB1vztZb8rVkhCTufmBm9XLu4tRBefucv", 681074},
	{"Fcepj314CEfXNMjw3o3ksiS8n7NPnx2b3n", 665251},
	{"Fow2UARYSKiRadS5gBvgw8kyvTW1WXjtie", 637415},
	{"FeuXwNSyVvihxbzZLAHPSRJXvJRPHdEGcF", 612481},
	{"FYAapBFgjv1k8CksoW3wgj3uW3Tx9YSdii", 486351},
	{"FXK7okfJRVUmvVjAzZWviHTjnwpdvzDUaH", 375151},
	{"FXWqj91mRsJiZ7GdciRhhpjiYrZkdQx5j1", 332660},
	{"FrvjLUEVaE4JdcADqY4xr86P34QPcneBRN", 276476},
	{"FsExUa5varLPcXDNiVitx57K3NVG81dYKy", 234469},
	{"FftK6xcwwHNGC1EYms2zDVGH4HcCGzbvvc", 34470},
	{"FsWL1XsRedStQqi96M1jgJgSqjv8syJTFQ", 12120},
	{"FZAYMWjmRJEsupQ8MqEGs94n4FtRSZMk6v", 4796},
	{"FkXgpHP3Z7o6s4pWJBwYbjG2ZW1B7tEcNB", 3580},
	{"FmsbXDtJ5w4w4cw4jLwDV6GJKHHqCyz4u2", 1836},
}
